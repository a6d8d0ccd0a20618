package replica

import (
	"context"
	"errors"
	"testing"
)

func TestFingerprint_Deterministic(t *testing.T) {
	v := Account{ID: "a1", Notes: []string{"n"}}

	f1, err := Fingerprint(v)
	if err != nil {
		t.Fatalf("Fingerprint() error: %v", err)
	}
	f2, err := Fingerprint(v)
	if err != nil {
		t.Fatalf("Fingerprint() error: %v", err)
	}

	if f1 != f2 {
		t.Errorf("fingerprints differ: %s vs %s", f1, f2)
	}
	if len(f1) != 64 {
		t.Errorf("len = %d, want 64 hex chars", len(f1))
	}
}

func TestFingerprint_DistinguishesValues(t *testing.T) {
	f1, _ := Fingerprint(Account{ID: "a1"})
	f2, _ := Fingerprint(Account{ID: "a2"})

	if f1 == f2 {
		t.Error("different values should produce different fingerprints")
	}
}

func TestFingerprint_SurvivesFullClone(t *testing.T) {
	src := Account{ID: "a1", Notes: []string{"n1", "n2"}}

	var dst Account
	if status := Clone(context.Background(), &dst, src, TrustedSource()); status != StatusFull {
		t.Fatalf("Clone() = %v, want full", status)
	}

	f1, _ := Fingerprint(src)
	f2, _ := Fingerprint(dst)
	if f1 != f2 {
		t.Error("a bit-exact clone should keep the source's fingerprint")
	}
}

func TestFingerprint_RequiresSerializable(t *testing.T) {
	_, err := Fingerprint(Doc{Title: "t"})
	if !errors.Is(err, ErrNotSerializable) {
		t.Errorf("error = %v, want ErrNotSerializable", err)
	}
}
