package demozerr_test

import (
	"errors"
	"testing"

	"demozcrypt/demozerr"
)

func TestIsMatchesByKindViaSentinel(t *testing.T) {
	err := demozerr.New(demozerr.ParamRange, "sha3.Init", "unrecognized variant")
	if !errors.Is(err, demozerr.Sentinel(demozerr.ParamRange)) {
		t.Fatalf("errors.Is did not match same-kind sentinel")
	}
	if errors.Is(err, demozerr.Sentinel(demozerr.Malformed)) {
		t.Fatalf("errors.Is matched a different-kind sentinel")
	}
}

func TestAtPositionCarriesPos(t *testing.T) {
	err := demozerr.AtPosition("basenc.Decode16", 3)
	if err.Kind != demozerr.Malformed {
		t.Fatalf("AtPosition kind = %v, want Malformed", err.Kind)
	}
	if err.Pos != 3 {
		t.Fatalf("AtPosition Pos = %d, want 3", err.Pos)
	}
	if !errors.Is(err, demozerr.Sentinel(demozerr.Malformed)) {
		t.Fatalf("errors.Is did not match Malformed sentinel")
	}
}
