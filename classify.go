package replica

import (
	"reflect"
	"time"
)

// Category describes how the engine treats a value during traversal.
type Category uint8

const (
	// CategoryNull is an absent value: a nil interface, nil pointer,
	// or invalid reflect value.
	CategoryNull Category = iota

	// CategoryScalar is an immutable terminal: numbers, booleans,
	// strings, and time values. Copied by value, never recursed into.
	CategoryScalar

	// CategorySequence is an ordered, index-addressable collection
	// (slice or array).
	CategorySequence

	// CategoryMapping is a key-value collection with unique keys.
	CategoryMapping

	// CategoryComplex is any other structured type with a discoverable
	// set of named fields.
	CategoryComplex

	// CategoryUnsupported is a value with no representable structure,
	// such as a channel, function, or unsafe pointer. The subtree it
	// roots is treated as a failure for that branch only.
	CategoryUnsupported
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryNull:
		return "null"
	case CategoryScalar:
		return "scalar"
	case CategorySequence:
		return "sequence"
	case CategoryMapping:
		return "mapping"
	case CategoryComplex:
		return "complex"
	case CategoryUnsupported:
		return "unsupported"
	}
	return "unknown"
}

var timeType = reflect.TypeOf(time.Time{})

// Classify reports the traversal category of v. It is a pure function
// of v's runtime type: pointers and interfaces are transparent, so a
// non-nil *T classifies as T does.
func Classify(v any) Category {
	if v == nil {
		return CategoryNull
	}
	return classifyValue(reflect.ValueOf(v))
}

func classifyValue(rv reflect.Value) Category {
	switch rv.Kind() {
	case reflect.Invalid:
		return CategoryNull
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return CategoryNull
		}
		return classifyValue(rv.Elem())
	case reflect.Slice, reflect.Array:
		return CategorySequence
	case reflect.Map:
		return CategoryMapping
	case reflect.Struct:
		if rv.Type() == timeType {
			return CategoryScalar
		}
		return CategoryComplex
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return CategoryUnsupported
	default:
		return CategoryScalar
	}
}

// isScalarType reports whether t is terminal: copied by value, never
// recursed into, and exempt from the depth budget.
func isScalarType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	case reflect.Struct:
		return t == timeType
	}
	return false
}
