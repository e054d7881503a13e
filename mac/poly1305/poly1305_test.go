package poly1305_test

import (
	"bytes"
	"testing"

	"demozcrypt/mac/poly1305"
)

func TestSumDeterministicAndKeySensitive(t *testing.T) {
	msg := []byte("Cryptographic Forum Research Group")
	keyA := bytes.Repeat([]byte{0x01}, poly1305.KeyLen)
	keyB := bytes.Repeat([]byte{0x02}, poly1305.KeyLen)

	tagA1, err := poly1305.Sum(msg, keyA)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	tagA2, err := poly1305.Sum(msg, keyA)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if tagA1 != tagA2 {
		t.Fatalf("Sum not deterministic: %x vs %x", tagA1, tagA2)
	}

	tagB, err := poly1305.Sum(msg, keyB)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if tagA1 == tagB {
		t.Fatalf("different keys produced the same tag")
	}
}

func TestInitRejectsWrongKeyLength(t *testing.T) {
	var c poly1305.Context
	if err := c.Init(make([]byte, poly1305.KeyLen-1)); err == nil {
		t.Fatalf("Init with a short key did not error")
	}
}

func TestProcessChunkingIsAssociative(t *testing.T) {
	key := bytes.Repeat([]byte{0x11}, poly1305.KeyLen)
	msg := []byte("this message is deliberately longer than one Poly1305 block")
	want, err := poly1305.Sum(msg, key)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}

	var c poly1305.Context
	if err := c.Init(key); err != nil {
		t.Fatalf("Init: %v", err)
	}
	for i := 0; i < len(msg); i += 9 {
		end := i + 9
		if end > len(msg) {
			end = len(msg)
		}
		if err := c.Process(msg[i:end]); err != nil {
			t.Fatalf("Process: %v", err)
		}
	}
	c.Finish()
	if got := c.Sum(); got != want {
		t.Errorf("chunked tag = %x, want %x", got, want)
	}
}
