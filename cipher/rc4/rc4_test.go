package rc4_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"demozcrypt/cipher/rc4"
)

func TestCryptoKAT(t *testing.T) {
	var ctx rc4.Context
	if err := ctx.Init([]byte("Key")); err != nil {
		t.Fatalf("Init: %v", err)
	}
	buf := []byte("Plaintext")
	ctx.Crypto(buf)

	want, _ := hex.DecodeString("bbf316e8d940af0ad3")
	if !bytes.Equal(buf, want) {
		t.Errorf("Crypto(\"Plaintext\") = %x, want %x", buf, want)
	}
}

func TestCryptoIsInvolutive(t *testing.T) {
	var enc, dec rc4.Context
	key := []byte("some arbitrary key material")
	if err := enc.Init(key); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := dec.Init(key); err != nil {
		t.Fatalf("Init: %v", err)
	}

	plain := []byte("the quick brown fox jumps over the lazy dog")
	buf := append([]byte(nil), plain...)
	enc.Crypto(buf)
	if bytes.Equal(buf, plain) {
		t.Fatalf("Crypto left the buffer unchanged")
	}
	dec.Crypto(buf)
	if !bytes.Equal(buf, plain) {
		t.Errorf("Crypto(Crypto(x)) = %q, want %q", buf, plain)
	}
}
