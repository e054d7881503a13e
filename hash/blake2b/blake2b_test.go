package blake2b_test

import (
	"bytes"
	"testing"

	"demozcrypt/hash/blake2b"
)

func TestSum512Deterministic(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")
	a := blake2b.Sum512(msg)
	b := blake2b.Sum512(msg)
	if !bytes.Equal(a, b) {
		t.Fatalf("Sum512 not deterministic: %x vs %x", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("Sum512 length = %d, want 64", len(a))
	}
	if other := blake2b.Sum512([]byte("the quick brown fox jumps over the lazy dof")); bytes.Equal(a, other) {
		t.Fatalf("different messages produced the same digest")
	}
}

func TestProcessChunkingIsAssociative(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog, and then some more")
	want := blake2b.Sum512(msg)

	var c blake2b.Context
	if err := c.Init(64); err != nil {
		t.Fatalf("Init: %v", err)
	}
	for i := 0; i < len(msg); i += 11 {
		end := i + 11
		if end > len(msg) {
			end = len(msg)
		}
		if err := c.Process(msg[i:end]); err != nil {
			t.Fatalf("Process: %v", err)
		}
	}
	c.Finish()
	got := c.Sum()
	if !bytes.Equal(got, want) {
		t.Errorf("chunked Sum = %x, want %x", got, want)
	}
}

func TestMACKeyChangesOutput(t *testing.T) {
	msg := []byte("message")
	a, err := blake2b.MAC([]byte("key-one"), msg, 32)
	if err != nil {
		t.Fatalf("MAC: %v", err)
	}
	b, err := blake2b.MAC([]byte("key-two"), msg, 32)
	if err != nil {
		t.Fatalf("MAC: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatalf("different keys produced the same MAC")
	}
}
