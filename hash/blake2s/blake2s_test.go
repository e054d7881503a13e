package blake2s_test

import (
	"bytes"
	"testing"

	"demozcrypt/hash/blake2s"
)

func TestSum256Deterministic(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")
	a := blake2s.Sum256(msg)
	b := blake2s.Sum256(msg)
	if !bytes.Equal(a, b) {
		t.Fatalf("Sum256 not deterministic: %x vs %x", a, b)
	}
	if len(a) != 32 {
		t.Fatalf("Sum256 length = %d, want 32", len(a))
	}
	if other := blake2s.Sum256([]byte("the quick brown fox jumps over the lazy dof")); bytes.Equal(a, other) {
		t.Fatalf("different messages produced the same digest")
	}
}

func TestProcessChunkingIsAssociative(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog, and then some more")
	want := blake2s.Sum256(msg)

	var c blake2s.Context
	if err := c.Init(32); err != nil {
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
	a, err := blake2s.MAC([]byte("key-one"), msg, 32)
	if err != nil {
		t.Fatalf("MAC: %v", err)
	}
	b, err := blake2s.MAC([]byte("key-two"), msg, 32)
	if err != nil {
		t.Fatalf("MAC: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatalf("different keys produced the same MAC")
	}
}
