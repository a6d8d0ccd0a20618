// Package replica provides depth-bounded deep cloning of object graphs.
//
// The package offers a single operation, Clone, that produces an
// independent copy of a source value: mutating the copy never affects
// the original, down to a caller-specified structural depth. It exists
// to eliminate the aliasing bugs that plain assignment or shallow
// copying introduce for nested mutable structures.
//
// # Strategies
//
// An Engine selects among three cloning strategies:
//
//   - full: a bit-exact round trip through a binary codec
//     (MessagePack by default). Unbounded depth, all-or-nothing.
//     Attempted only when the caller asserts TrustedSource and the
//     value's type implements the Serializable marker.
//   - recursive: a reflective, depth-bounded graph copy. Cycle-safe
//     via an identity-keyed visited map. Absorbs every per-node
//     failure into an aggregate partial result.
//   - text: a round trip through a tagged text codec (XML by
//     default). Substitutes for the recursive tier when reflective
//     traversal is disabled; never used as a fallback for an
//     incomplete recursive clone.
//
// # Statuses
//
// Clone reports one of three statuses and never returns an error:
//
//   - StatusFull (0): bit-exact clone via the binary round trip.
//   - StatusPartial (1): clone produced by the recursive or text
//     strategy. May share structure with the source below the depth
//     horizon.
//   - StatusFailed (2): no clone could be produced; the destination
//     holds its zero value.
//
// The destination slot is always written exactly once before Clone
// returns, so it never retains a stale prior value.
//
// # Depth
//
// The recursive strategy descends Depth(n) levels of nested structure
// (default 2). Nodes at the horizon are shared by reference with the
// source rather than copied, and the result is demoted to
// StatusPartial. The binary and text strategies are always full depth
// and ignore the option.
//
// # Trust
//
// Binary deserialization of untrusted input is a known attack surface,
// so the full strategy is gated twice: the value's type must implement
// Serializable, and the caller must pass TrustedSource for that call.
// The engine performs no further validation of the assertion.
//
// # Tag Syntax
//
// Struct fields may opt out of deep copying:
//
//	type Session struct {
//	    ID    string
//	    Cache *Buffer   `clone:"shallow"` // copy the reference only
//	    Stats *Counters `clone:"skip"`    // left at the zero value
//	}
//
// # Basic Usage
//
//	var dst Order
//	switch replica.Clone(ctx, &dst, src, replica.Depth(3)) {
//	case replica.StatusFull, replica.StatusPartial:
//	    // dst is safe to mutate
//	case replica.StatusFailed:
//	    // dst is the zero Order
//	}
//
// # Codec Providers
//
// Built-in codecs, usable with WithBinaryCodec and WithTextCodec:
//
//   - Msgpack() - MessagePack (application/msgpack), the default binary codec
//   - XML() - XML (application/xml), the default text codec
//   - JSON() - JSON (application/json)
//   - YAML() - YAML (application/yaml)
//
// # Events
//
// Clone calls emit capitan signals (clone start, per-strategy attempt,
// clone complete). Failure detail is only available through these
// events; the status code deliberately carries none.
package replica

import "context"

// DefaultDepth is the descent bound applied when no Depth option is given.
const DefaultDepth = 2

// Status is the outcome of a Clone call.
type Status int

const (
	// StatusFull reports a bit-exact clone via the binary round trip.
	StatusFull Status = iota

	// StatusPartial reports a clone via the recursive or text strategy,
	// possibly depth-limited or partially shared with the source.
	StatusPartial

	// StatusFailed reports that no clone could be produced. The
	// destination slot holds its zero value.
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusFull:
		return "full"
	case StatusPartial:
		return "partial"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// request carries the per-call parameters. Built at call entry,
// consumed synchronously, discarded.
type request struct {
	depth   int
	trusted bool
}

// Option adjusts a single Clone call.
type Option func(*request)

// Depth bounds the recursive strategy's descent to n levels of nested
// structure. Non-positive values cause the call to fail. The binary
// and text strategies are full depth and ignore this option.
func Depth(n int) Option {
	return func(r *request) { r.depth = n }
}

// TrustedSource asserts that the source value's provenance is trusted,
// unlocking the binary round-trip strategy for this call. It has no
// other effect.
func TrustedSource() Option {
	return func(r *request) { r.trusted = true }
}

// defaultEngine backs the package-level operations.
var defaultEngine = New()

// Clone deep-copies src into the slot dst points to, using the default
// engine. It never panics and never returns an error; consult the
// returned Status and the emitted events instead.
func Clone(ctx context.Context, dst, src any, opts ...Option) Status {
	return defaultEngine.Clone(ctx, dst, src, opts...)
}

// From clones src and returns the result, for callers without a typed
// destination slot. The returned value is nil when the status is
// StatusFailed.
func From(ctx context.Context, src any, opts ...Option) (any, Status) {
	return defaultEngine.From(ctx, src, opts...)
}

// Fingerprint returns the SHA-256 hex digest of v's binary encoding
// using the default engine.
func Fingerprint(v any) (string, error) {
	return defaultEngine.Fingerprint(v)
}
