package replica

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the SHA-256 hex digest of v's binary encoding.
// Two values with identical structure produce identical fingerprints
// for a given binary codec, which makes the digest useful for
// verifying clone fidelity or detecting drift between snapshots.
//
// Like the full strategy, fingerprinting requires the type to
// implement the Serializable marker.
func (e *Engine) Fingerprint(v any) (string, error) {
	name := typeName(v)
	if _, ok := v.(Serializable); !ok {
		return "", newStrategyError(ErrNotSerializable, strategyFull.String(), name, nil)
	}

	data, err := e.binary.Marshal(v)
	if err != nil {
		return "", newStrategyError(ErrEncode, strategyFull.String(), name, err)
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
