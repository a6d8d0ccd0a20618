package replica

import (
	"errors"
	"reflect"
)

// errCyclicValue declines a round-trip strategy before its codec
// recurses into a cycle. Stack exhaustion inside a marshaler is fatal
// to the process and cannot be recovered, so cyclic input must never
// reach one.
var errCyclicValue = errors.New("value contains a reference cycle")

// hasCycle reports whether v's reachable graph contains a reference
// cycle. Only the current traversal path is tracked, so acyclic graphs
// with shared nodes are not flagged.
func hasCycle(v any) bool {
	if v == nil {
		return false
	}
	return cyclic(reflect.ValueOf(v), make(map[identity]struct{}))
}

func cyclic(rv reflect.Value, path map[identity]struct{}) bool {
	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return cyclic(rv.Elem(), path)
	case reflect.Ptr:
		if rv.IsNil() {
			return false
		}
		return onPath(rv, path, func() bool {
			return cyclic(rv.Elem(), path)
		})
	case reflect.Slice:
		if rv.IsNil() {
			return false
		}
		return onPath(rv, path, func() bool {
			for i := 0; i < rv.Len(); i++ {
				if cyclic(rv.Index(i), path) {
					return true
				}
			}
			return false
		})
	case reflect.Map:
		if rv.IsNil() {
			return false
		}
		return onPath(rv, path, func() bool {
			iter := rv.MapRange()
			for iter.Next() {
				if cyclic(iter.Key(), path) || cyclic(iter.Value(), path) {
					return true
				}
			}
			return false
		})
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if cyclic(rv.Index(i), path) {
				return true
			}
		}
	case reflect.Struct:
		if rv.Type() == timeType {
			return false
		}
		for i := 0; i < rv.NumField(); i++ {
			if cyclic(rv.Field(i), path) {
				return true
			}
		}
	}
	return false
}

// onPath runs walk with rv's identity held on the path; a revisit of
// that identity while it is held is a cycle.
func onPath(rv reflect.Value, path map[identity]struct{}, walk func() bool) bool {
	id := identity{rv.Type(), rv.Pointer()}
	if _, ok := path[id]; ok {
		return true
	}
	path[id] = struct{}{}
	found := walk()
	delete(path, id)
	return found
}
