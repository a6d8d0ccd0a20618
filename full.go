package replica

import (
	"fmt"
	"reflect"
)

// tryFull attempts a bit-exact clone via the binary round trip. It is
// all-or-nothing: any failure returns an error with no partial clone.
// The trust gate comes first: binary deserialization of untrusted
// input is the documented risk this strategy carries, and the caller's
// assertion is its only permission.
func (e *Engine) tryFull(src any, trusted bool) (out any, err error) {
	name := typeName(src)
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = newStrategyError(ErrEncode, strategyFull.String(), name, panicError(r))
		}
	}()

	if !trusted {
		return nil, newStrategyError(ErrUntrustedSource, strategyFull.String(), name, nil)
	}
	if _, ok := src.(Serializable); !ok {
		return nil, newStrategyError(ErrNotSerializable, strategyFull.String(), name, nil)
	}
	if hasCycle(src) {
		return nil, newStrategyError(ErrEncode, strategyFull.String(), name, errCyclicValue)
	}

	data, err := e.binary.Marshal(src)
	if err != nil {
		return nil, newStrategyError(ErrEncode, strategyFull.String(), name, err)
	}

	slot := reflect.New(reflect.TypeOf(src))
	if err := e.binary.Unmarshal(data, slot.Interface()); err != nil {
		return nil, newStrategyError(ErrDecode, strategyFull.String(), name, err)
	}
	return slot.Elem().Interface(), nil
}

// panicError converts a recovered panic value into an error.
func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
