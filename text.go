package replica

import "reflect"

// tryText attempts a full-depth clone via the tagged text round trip.
// Unlike the binary strategy it needs no trust assertion, but it can
// only clone what the text encoder can represent: unsupported native
// handles or unrepresentable shapes surface as an error and no clone.
func (e *Engine) tryText(src any) (out any, err error) {
	if src == nil {
		return nil, nil
	}

	name := typeName(src)
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = newStrategyError(ErrEncode, strategyText.String(), name, panicError(r))
		}
	}()

	if hasCycle(src) {
		return nil, newStrategyError(ErrEncode, strategyText.String(), name, errCyclicValue)
	}

	data, err := e.text.Marshal(src)
	if err != nil {
		return nil, newStrategyError(ErrEncode, strategyText.String(), name, err)
	}

	slot := reflect.New(reflect.TypeOf(src))
	if err := e.text.Unmarshal(data, slot.Interface()); err != nil {
		return nil, newStrategyError(ErrDecode, strategyText.String(), name, err)
	}
	return slot.Elem().Interface(), nil
}
