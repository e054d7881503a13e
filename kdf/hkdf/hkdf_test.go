package hkdf_test

import (
	"encoding/hex"
	"testing"

	"demozcrypt/kdf/hkdf"
	"demozcrypt/mac/hmac"
)

func TestDeriveRFC5869Case1(t *testing.T) {
	ikm, _ := hex.DecodeString("0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")
	salt, _ := hex.DecodeString("000102030405060708090a0b0c")
	info, _ := hex.DecodeString("f0f1f2f3f4f5f6f7f8f9")
	const want = "3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865"

	okm, err := hkdf.Derive(func() hkdf.Hasher { return hmac.NewSHA256() }, 32, ikm, salt, info, 42)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	got := hex.EncodeToString(okm)
	if got != want {
		t.Fatalf("Derive = %s, want %s", got, want)
	}
}

func TestDeriveOverSHA3_256IsDeterministicAndSaltSensitive(t *testing.T) {
	ikm := []byte("input keying material")
	newHasher := func() hkdf.Hasher { return hmac.NewSHA3_256() }

	a, err := hkdf.Derive(newHasher, 32, ikm, []byte("salt one"), nil, 32)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	a2, err := hkdf.Derive(newHasher, 32, ikm, []byte("salt one"), nil, 32)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if hex.EncodeToString(a) != hex.EncodeToString(a2) {
		t.Fatal("Derive over SHA3-256 not deterministic")
	}

	b, err := hkdf.Derive(newHasher, 32, ikm, []byte("salt two"), nil, 32)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if hex.EncodeToString(a) == hex.EncodeToString(b) {
		t.Fatal("different salts produced the same SHA3-256 HKDF output")
	}
}

func TestDeriveRejectsOversizedOutput(t *testing.T) {
	_, err := hkdf.Derive(func() hkdf.Hasher { return hmac.NewSHA256() }, 32, []byte("ikm"), nil, nil, 255*32+1)
	if err == nil {
		t.Fatal("expected error for output length beyond 255*hashLen, got nil")
	}
}

func TestDeriveNilSaltMatchesZeroSalt(t *testing.T) {
	ikm := []byte("input keying material")
	newHasher := func() hkdf.Hasher { return hmac.NewSHA256() }

	withNil, err := hkdf.Derive(newHasher, 32, ikm, nil, nil, 32)
	if err != nil {
		t.Fatalf("Derive(nil salt): %v", err)
	}
	zeroSalt := make([]byte, 32)
	withZero, err := hkdf.Derive(newHasher, 32, ikm, zeroSalt, nil, 32)
	if err != nil {
		t.Fatalf("Derive(zero salt): %v", err)
	}
	if hex.EncodeToString(withNil) != hex.EncodeToString(withZero) {
		t.Fatal("nil salt and all-zero salt produced different output")
	}
}
