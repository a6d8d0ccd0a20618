package replica

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling. None of them escape
// the Clone operation; they surface only through emitted events and
// through StrategyError values. Use errors.Is() to check for them.
var (
	// ErrNotSerializable indicates the type lacks the Serializable marker.
	ErrNotSerializable = errors.New("type not serializable")

	// ErrUntrustedSource indicates the binary strategy was reached
	// without the caller's TrustedSource assertion.
	ErrUntrustedSource = errors.New("source not trusted")

	// ErrEncode indicates a codec failed to marshal the source.
	ErrEncode = errors.New("encode failed")

	// ErrDecode indicates a codec failed to unmarshal the round trip.
	ErrDecode = errors.New("decode failed")

	// ErrFieldAccess indicates a field could not be read or written
	// during reflective traversal.
	ErrFieldAccess = errors.New("field access denied")

	// ErrUnsupportedType indicates the value has no representable structure.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrCapabilityMissing indicates reflective traversal is
	// unavailable on this engine.
	ErrCapabilityMissing = errors.New("reflective traversal unavailable")

	// ErrBadDepth indicates a non-positive depth was supplied.
	ErrBadDepth = errors.New("invalid depth")

	// ErrBadDestination indicates the destination is not a usable
	// non-nil pointer.
	ErrBadDestination = errors.New("invalid destination")
)

// StrategyError records why one cloning strategy declined or failed.
// It wraps a sentinel error with the strategy and source type involved.
type StrategyError struct {
	Err      error  // Underlying sentinel error (ErrNotSerializable, etc.)
	Strategy string // Strategy that failed (full, recursive, text)
	TypeName string // Source value's type
	Cause    error  // Original error from the codec or traversal
}

func (e *StrategyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s strategy for %s: %s: %v", e.Strategy, e.TypeName, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("%s strategy for %s: %s", e.Strategy, e.TypeName, e.Err.Error())
}

func (e *StrategyError) Unwrap() error {
	return e.Err
}

// newStrategyError creates a StrategyError for a failed strategy attempt.
func newStrategyError(sentinel error, strat, typeName string, cause error) error {
	return &StrategyError{
		Err:      sentinel,
		Strategy: strat,
		TypeName: typeName,
		Cause:    cause,
	}
}
