package replica

// Cloner lets a type supply its own deep copy, bypassing reflection.
// When a struct (or pointer to struct) encountered during recursive
// traversal implements Cloner, the engine calls DeepClone instead of
// copying its fields, and treats the subtree as fully cloned.
//
// The returned value's type must be assignable to the receiver's type;
// anything else is discarded and the subtree is demoted to partial.
//
// This is the override hook for hot paths and for types whose copy
// semantics reflection cannot express:
//
//	func (b *Buffer) DeepClone() any {
//	    out := &Buffer{data: make([]byte, len(b.data))}
//	    copy(out.data, b.data)
//	    return out
//	}
type Cloner interface {
	DeepClone() any
}

// Serializable marks a type as declaring itself safe for the binary
// round-trip strategy. The method is a marker and is never called.
//
// Binary deserialization carries a trust risk, so the marker alone is
// not enough: the full strategy also requires the caller's
// TrustedSource assertion on each call.
//
//	type Order struct{ ... }
//
//	func (Order) Serializable() {}
type Serializable interface {
	Serializable()
}
