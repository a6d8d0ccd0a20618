package replica

import "reflect"

var clonerType = reflect.TypeOf((*Cloner)(nil)).Elem()

// identity keys the visited map by dynamic type and referent address.
// Address alone is ambiguous: a struct and its first field share one.
type identity struct {
	typ reflect.Type
	ptr uintptr
}

// graphCloner performs one depth-bounded traversal. A fresh cloner is
// allocated per top-level call and discarded at return, so visited
// entries never leak across calls or retain caller graphs.
type graphCloner struct {
	seen     map[identity]reflect.Value
	complete bool
}

// cloneGraph deep-copies src down to depth levels of nested structure.
// The returned flag reports whether every node was fully copied: a
// depth-limited share, an unsupported branch, or an unwritable field
// anywhere in the graph turns it false without aborting the traversal.
// Errors never escape; all per-node failures are absorbed.
func cloneGraph(src any, depth int) (any, bool) {
	if src == nil {
		return nil, true
	}
	if Classify(src) == CategoryUnsupported {
		return nil, false
	}

	c := &graphCloner{seen: make(map[identity]reflect.Value), complete: true}
	out := c.clone(reflect.ValueOf(src), depth)
	if !out.IsValid() {
		return nil, c.complete
	}
	return out.Interface(), c.complete
}

// clone copies a single node. Containers clone their children at
// depth-1; scalars and identity wrappers (pointers, interfaces) do not
// consume depth. Arriving at a container with depth 0 shares the
// original reference and demotes the result.
func (c *graphCloner) clone(rv reflect.Value, depth int) reflect.Value {
	switch rv.Kind() {
	case reflect.Invalid:
		return rv
	case reflect.Interface:
		if rv.IsNil() {
			return reflect.Zero(rv.Type())
		}
		return c.clone(rv.Elem(), depth)
	case reflect.Ptr:
		return c.clonePointer(rv, depth)
	case reflect.Slice:
		return c.cloneSlice(rv, depth)
	case reflect.Array:
		return c.cloneArray(rv, depth)
	case reflect.Map:
		return c.cloneMap(rv, depth)
	case reflect.Struct:
		if rv.Type() == timeType {
			return rv
		}
		return c.cloneStruct(rv, depth)
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		c.complete = false
		return reflect.Zero(rv.Type())
	default:
		// Scalar kinds copy by value on assignment.
		return rv
	}
}

func (c *graphCloner) clonePointer(rv reflect.Value, depth int) reflect.Value {
	if rv.IsNil() {
		return rv
	}
	id := identity{rv.Type(), rv.Pointer()}
	if prior, ok := c.seen[id]; ok {
		return prior
	}
	if out, ok := c.override(rv); ok {
		c.seen[id] = out
		return out
	}

	elemType := rv.Type().Elem()
	if isScalarType(elemType) {
		np := reflect.New(elemType)
		np.Elem().Set(rv.Elem())
		c.seen[id] = np
		return np
	}
	if depth == 0 {
		c.complete = false
		return rv
	}

	// Register the new pointer before descending so a self-reference
	// resolves to the in-progress clone instead of recursing forever.
	np := reflect.New(elemType)
	c.seen[id] = np
	elem := c.clone(rv.Elem(), depth)
	if elem.IsValid() {
		np.Elem().Set(elem)
	}
	return np
}

func (c *graphCloner) cloneSlice(rv reflect.Value, depth int) reflect.Value {
	if rv.IsNil() {
		return rv
	}
	id := identity{rv.Type(), rv.Pointer()}
	if prior, ok := c.seen[id]; ok {
		return prior
	}
	if depth == 0 {
		c.complete = false
		return rv
	}

	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	c.seen[id] = out
	for i := 0; i < rv.Len(); i++ {
		elem := c.clone(rv.Index(i), depth-1)
		if elem.IsValid() {
			out.Index(i).Set(elem)
		}
	}
	return out
}

func (c *graphCloner) cloneArray(rv reflect.Value, depth int) reflect.Value {
	if depth == 0 {
		c.complete = false
		return rv
	}
	out := reflect.New(rv.Type()).Elem()
	for i := 0; i < rv.Len(); i++ {
		elem := c.clone(rv.Index(i), depth-1)
		if elem.IsValid() {
			out.Index(i).Set(elem)
		}
	}
	return out
}

func (c *graphCloner) cloneMap(rv reflect.Value, depth int) reflect.Value {
	if rv.IsNil() {
		return rv
	}
	id := identity{rv.Type(), rv.Pointer()}
	if prior, ok := c.seen[id]; ok {
		return prior
	}
	if depth == 0 {
		c.complete = false
		return rv
	}

	out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
	c.seen[id] = out
	iter := rv.MapRange()
	for iter.Next() {
		// A key that cannot be cloned degrades that entry only.
		if classifyValue(iter.Key()) == CategoryUnsupported {
			c.complete = false
			continue
		}
		key := c.clone(iter.Key(), depth-1)
		val := c.clone(iter.Value(), depth-1)
		if !key.IsValid() || !val.IsValid() {
			c.complete = false
			continue
		}
		out.SetMapIndex(key, val)
	}
	return out
}

func (c *graphCloner) cloneStruct(rv reflect.Value, depth int) reflect.Value {
	if out, ok := c.override(rv); ok {
		return out
	}
	if depth == 0 {
		c.complete = false
		return rv
	}

	plan := plansFor(rv.Type())
	out := reflect.New(rv.Type()).Elem()
	if plan.opaque {
		// Unexported fields stay zero in the copy; the subtree cannot
		// claim full fidelity.
		c.complete = false
	}
	for _, f := range plan.fields {
		dst := out.FieldByIndex(f.index)
		if !dst.CanSet() {
			c.complete = false
			continue
		}
		src := rv.FieldByIndex(f.index)
		switch f.mode {
		case fieldSkip:
			// Left at the zero value by request; not a demotion.
		case fieldShallow:
			dst.Set(src)
		default:
			elem := c.clone(src, depth-1)
			if elem.IsValid() {
				dst.Set(elem)
			}
		}
	}
	return out
}

// override dispatches to a value's own Cloner implementation when it
// has one. The result replaces the whole subtree and does not consume
// depth.
func (c *graphCloner) override(rv reflect.Value) (reflect.Value, bool) {
	if !rv.CanInterface() || !rv.Type().Implements(clonerType) {
		return reflect.Value{}, false
	}
	out := rv.Interface().(Cloner).DeepClone()
	if out == nil {
		return reflect.Zero(rv.Type()), true
	}
	ov := reflect.ValueOf(out)
	if !ov.Type().AssignableTo(rv.Type()) {
		c.complete = false
		return reflect.Zero(rv.Type()), true
	}
	return ov, true
}
