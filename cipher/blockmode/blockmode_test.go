package blockmode_test

import (
	"bytes"
	"testing"

	"demozcrypt/cipher/aes"
	"demozcrypt/cipher/blockmode"
)

func newAES(t *testing.T) *aes.Context {
	t.Helper()
	var ctx aes.Context
	key := make([]byte, 16)
	for i := range key {
		key[i] = byte(i)
	}
	if err := ctx.Init(key, aes.Type128); err != nil {
		t.Fatalf("aes.Init: %v", err)
	}
	return &ctx
}

func TestCBCRoundTripMultiBlock(t *testing.T) {
	ctx := newAES(t)
	plain := []byte("sixteen byte blk" + "another block!!!" + "third block here")
	// pad the fixture up to an exact multiple of the block size.
	for len(plain)%aes.BlockSize != 0 {
		plain = append(plain, 0)
	}

	iv := make([]byte, aes.BlockSize)
	for i := range iv {
		iv[i] = byte(0xA0 + i)
	}

	cipherIV := append([]byte(nil), iv...)
	ct := append([]byte(nil), plain...)
	for off := 0; off < len(ct); off += aes.BlockSize {
		if err := blockmode.EncryptCBC(ctx, cipherIV, ct[off:off+aes.BlockSize]); err != nil {
			t.Fatalf("EncryptCBC: %v", err)
		}
	}

	decIV := append([]byte(nil), iv...)
	pt := append([]byte(nil), ct...)
	for off := 0; off < len(pt); off += aes.BlockSize {
		if err := blockmode.DecryptCBC(ctx, decIV, pt[off:off+aes.BlockSize]); err != nil {
			t.Fatalf("DecryptCBC: %v", err)
		}
	}

	if !bytes.Equal(pt, plain) {
		t.Fatalf("CBC round trip = %x, want %x", pt, plain)
	}
}

func TestCTRRoundTrip(t *testing.T) {
	ctx := newAES(t)
	plain := bytes.Repeat([]byte{0x42}, 100)

	nonce := make([]byte, aes.BlockSize)
	ct := append([]byte(nil), plain...)
	if err := blockmode.CryptoCTR(ctx, nonce, ct); err != nil {
		t.Fatalf("CryptoCTR encrypt: %v", err)
	}
	if bytes.Equal(ct, plain) {
		t.Fatal("CTR ciphertext equals plaintext")
	}

	nonce2 := make([]byte, aes.BlockSize)
	if err := blockmode.CryptoCTR(ctx, nonce2, ct); err != nil {
		t.Fatalf("CryptoCTR decrypt: %v", err)
	}
	if !bytes.Equal(ct, plain) {
		t.Fatalf("CTR round trip = %x, want %x", ct, plain)
	}
}

func TestEncryptCBCRejectsBadIVLength(t *testing.T) {
	ctx := newAES(t)
	state := make([]byte, aes.BlockSize)
	if err := blockmode.EncryptCBC(ctx, make([]byte, 4), state); err == nil {
		t.Fatal("expected error for mismatched IV length, got nil")
	}
}
