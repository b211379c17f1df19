package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
)

func TestMakeRandHexString_LengthAndHex(t *testing.T) {
	const n = 16
	s, err := MakeRandHexString(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != n*2 {
		t.Fatalf("expected hex length %d, got %d", n*2, len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		t.Fatalf("string is not valid hex: %v", err)
	}
}

func TestMakeRandHexString_ZeroSize(t *testing.T) {
	s, err := MakeRandHexString(0)
	if err != nil {
		t.Fatalf("unexpected error for size=0: %v", err)
	}
	if s != "" {
		t.Fatalf("expected empty string for size=0, got %q", s)
	}
}

func TestSentinels_SurviveWrapping(t *testing.T) {
	err := fmt.Errorf("import: %w", ErrValidation)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("wrapped error lost its sentinel: %v", err)
	}
	if errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("unexpected match with ErrUnauthenticated")
	}
}
