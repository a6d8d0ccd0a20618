package replica

import (
	"context"
	"errors"
	"reflect"
	"time"
)

// strategy is the closed set of cloning techniques the engine
// orchestrates. Each implements the same value-in, clone-out shape, so
// orchestration stays strategy-agnostic.
type strategy uint8

const (
	strategyNone strategy = iota
	strategyFull
	strategyRecursive
	strategyText
)

func (s strategy) String() string {
	switch s {
	case strategyFull:
		return "full"
	case strategyRecursive:
		return "recursive"
	case strategyText:
		return "text"
	}
	return "none"
}

// Engine clones values by orchestrating the full, recursive, and text
// strategies. Engines are immutable after construction and safe for
// concurrent use; each Clone call allocates its own traversal state.
type Engine struct {
	binary     Codec
	text       Codec
	reflective bool
}

// EngineOption configures an Engine at construction.
type EngineOption func(*Engine)

// WithBinaryCodec replaces the binary round-trip codec used by the
// full strategy. Default is Msgpack().
func WithBinaryCodec(c Codec) EngineOption {
	return func(e *Engine) { e.binary = c }
}

// WithTextCodec replaces the text round-trip codec used by the text
// strategy. Default is XML().
func WithTextCodec(c Codec) EngineOption {
	return func(e *Engine) { e.text = c }
}

// WithReflectiveTraversal controls whether the recursive strategy may
// use reflection. When disabled, the text round trip substitutes for
// the whole recursive tier. This is a capability switch, not a
// fallback: with reflection available the text strategy is never
// selected.
func WithReflectiveTraversal(enabled bool) EngineOption {
	return func(e *Engine) { e.reflective = enabled }
}

// New creates an Engine with the given options.
func New(opts ...EngineOption) *Engine {
	e := &Engine{
		binary:     Msgpack(),
		text:       XML(),
		reflective: true,
	}
	for _, opt := range opts {
		opt(e)
	}

	emitEngineCreated(context.Background(), e.binary.ContentType(), e.text.ContentType())
	return e
}

// Clone deep-copies src into the slot dst points to and reports the
// outcome. dst must be a non-nil pointer whose element type can hold
// the clone; any (interface{}) always can.
//
// The slot is written exactly once before return: a full clone, a
// partial clone, or its zero value on StatusFailed. The source is
// never mutated. The call is fully synchronous; ctx is used for event
// emission only.
func (e *Engine) Clone(ctx context.Context, dst, src any, opts ...Option) Status {
	req := request{depth: DefaultDepth}
	for _, opt := range opts {
		opt(&req)
	}

	name := typeName(src)
	start := time.Now()
	emitCloneStart(ctx, name, req.depth, req.trusted)

	if req.depth <= 0 {
		assign(dst, nil)
		emitCloneComplete(ctx, name, strategyNone, StatusFailed, time.Since(start),
			newStrategyError(ErrBadDepth, strategyNone.String(), name, nil))
		return StatusFailed
	}

	out, status, strat := e.cloneValue(ctx, src, req)
	if status == StatusFailed {
		out = nil
	}

	var err error
	if !assign(dst, out) {
		status = StatusFailed
		err = newStrategyError(ErrBadDestination, strat.String(), name, nil)
	}

	emitCloneComplete(ctx, name, strat, status, time.Since(start), err)
	return status
}

// From clones src and returns the result instead of writing a caller
// slot. The returned value is nil when the status is StatusFailed.
func (e *Engine) From(ctx context.Context, src any, opts ...Option) (any, Status) {
	var out any
	status := e.Clone(ctx, &out, src, opts...)
	return out, status
}

// cloneValue runs the strategy state machine: try full, then the
// recursive tier (or its text substitute), then give up.
func (e *Engine) cloneValue(ctx context.Context, src any, req request) (any, Status, strategy) {
	name := typeName(src)

	// Full tier: at most one attempt, only when explicitly authorized,
	// never retried. An untrusted decline is silent; it is not an
	// attempt.
	out, err := e.tryFull(src, req.trusted)
	if err == nil {
		emitStrategyAttempt(ctx, strategyFull, name, true, nil)
		return out, StatusFull, strategyFull
	}
	if !errors.Is(err, ErrUntrustedSource) {
		emitStrategyAttempt(ctx, strategyFull, name, false, err)
	}

	// Recursive tier. The text strategy stands in only when reflective
	// traversal is unavailable, not when a recursive clone comes back
	// incomplete.
	if e.reflective {
		out, complete, err := e.tryRecursive(src, req.depth)
		if err == nil && out == nil && Classify(src) != CategoryNull {
			err = newStrategyError(ErrUnsupportedType, strategyRecursive.String(), name, nil)
			emitStrategyAttempt(ctx, strategyRecursive, name, false, err)
			return nil, StatusFailed, strategyRecursive
		}
		emitStrategyAttempt(ctx, strategyRecursive, name, complete, err)
		if err == nil {
			// The recursive path never carries the bit-exact
			// guarantee, so even a complete copy is partial.
			return out, StatusPartial, strategyRecursive
		}
	} else {
		emitStrategyAttempt(ctx, strategyRecursive, name, false,
			newStrategyError(ErrCapabilityMissing, strategyRecursive.String(), name, nil))
	}

	out, err = e.tryText(src)
	emitStrategyAttempt(ctx, strategyText, name, err == nil, err)
	if err == nil {
		return out, StatusPartial, strategyText
	}
	return nil, StatusFailed, strategyText
}

// tryRecursive wraps the reflective graph copy so that a reflection
// panic surfaces as a tier failure instead of escaping the engine.
func (e *Engine) tryRecursive(src any, depth int) (out any, complete bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, complete = nil, false
			err = newStrategyError(ErrFieldAccess, strategyRecursive.String(), typeName(src), panicError(r))
		}
	}()

	out, complete = cloneGraph(src, depth)
	return out, complete, nil
}

// assign writes val into the slot dst points to, zeroing the slot
// first so a failed clone never leaves a stale prior value behind.
func assign(dst, val any) bool {
	p := reflect.ValueOf(dst)
	if p.Kind() != reflect.Ptr || p.IsNil() {
		return false
	}
	slot := p.Elem()
	if !slot.CanSet() {
		return false
	}

	slot.Set(reflect.Zero(slot.Type()))
	if val == nil {
		return true
	}

	rv := reflect.ValueOf(val)
	if !rv.Type().AssignableTo(slot.Type()) {
		return false
	}
	slot.Set(rv)
	return true
}

// typeName names a value's dynamic type for diagnostics.
func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
