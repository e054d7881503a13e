package siphash_test

import (
	"testing"

	"demozcrypt/mac/siphash"
)

func TestSum64DeterministicAndKeySensitive(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")
	keyA := make([]byte, siphash.KeyLen)
	keyB := make([]byte, siphash.KeyLen)
	for i := range keyA {
		keyA[i] = byte(i)
		keyB[i] = byte(i + 1)
	}

	a1, err := siphash.Sum64(msg, keyA)
	if err != nil {
		t.Fatalf("Sum64: %v", err)
	}
	a2, err := siphash.Sum64(msg, keyA)
	if err != nil {
		t.Fatalf("Sum64: %v", err)
	}
	if a1 != a2 {
		t.Fatalf("Sum64 not deterministic: %#x vs %#x", a1, a2)
	}

	b, err := siphash.Sum64(msg, keyB)
	if err != nil {
		t.Fatalf("Sum64: %v", err)
	}
	if a1 == b {
		t.Fatalf("different keys produced the same digest")
	}
}

func TestSum64RejectsWrongKeyLength(t *testing.T) {
	if _, err := siphash.Sum64(nil, make([]byte, siphash.KeyLen-1)); err == nil {
		t.Fatalf("Sum64 with a short key did not error")
	}
}

func TestSum128DiffersFromSum64(t *testing.T) {
	msg := []byte("message")
	key := make([]byte, siphash.KeyLen)
	lo, hi, err := siphash.Sum128(msg, key)
	if err != nil {
		t.Fatalf("Sum128: %v", err)
	}
	sum64, err := siphash.Sum64(msg, key)
	if err != nil {
		t.Fatalf("Sum64: %v", err)
	}
	if lo == 0 && hi == 0 {
		t.Fatalf("Sum128 returned an all-zero digest")
	}
	// Sum128's low half is not required to equal Sum64 (the extension XORs
	// additional constants into v2 before re-finalizing), but both must be
	// stable outputs of the same key/message pair.
	lo2, hi2, err := siphash.Sum128(msg, key)
	if err != nil {
		t.Fatalf("Sum128: %v", err)
	}
	if lo != lo2 || hi != hi2 {
		t.Fatalf("Sum128 not deterministic")
	}
	_ = sum64
}
