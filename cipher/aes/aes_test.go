package aes

import (
	"encoding/hex"
	"testing"
)

func TestEncryptFIPS197AppendixCVector1(t *testing.T) {
	// FIPS 197 Appendix C.1: AES-128.
	key, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	plain, _ := hex.DecodeString("00112233445566778899aabbccddeeff")
	const want = "69c4e0d86a7b0430d8cdb78070b4c55a"

	var ctx Context
	if err := ctx.Init(key, Type128); err != nil {
		t.Fatalf("Init: %v", err)
	}
	state := append([]byte(nil), plain...)
	ctx.Encrypt(state)
	if got := hex.EncodeToString(state); got != want {
		t.Fatalf("Encrypt = %s, want %s", got, want)
	}
}

func TestDecryptReversesEncrypt(t *testing.T) {
	key, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	plain, _ := hex.DecodeString("00112233445566778899aabbccddeeff")

	var ctx Context
	if err := ctx.Init(key, Type256); err != nil {
		t.Fatalf("Init: %v", err)
	}
	state := append([]byte(nil), plain...)
	ctx.Encrypt(state)
	ctx.Decrypt(state)
	if hex.EncodeToString(state) != hex.EncodeToString(plain) {
		t.Fatalf("Decrypt(Encrypt(p)) = %x, want %x", state, plain)
	}
}

func TestInitRejectsBadKeyLength(t *testing.T) {
	var ctx Context
	if err := ctx.Init(make([]byte, 10), Type128); err == nil {
		t.Fatal("expected error for wrong key length, got nil")
	}
}

func TestInitRejectsUnknownType(t *testing.T) {
	var ctx Context
	if err := ctx.Init(make([]byte, 16), 99); err == nil {
		t.Fatal("expected error for unknown type, got nil")
	}
}

func TestBlockSize(t *testing.T) {
	var ctx Context
	if ctx.BlockSize() != 16 {
		t.Fatalf("BlockSize = %d, want 16", ctx.BlockSize())
	}
}
