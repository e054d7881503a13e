package blowfish_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"demozcrypt/cipher/blowfish"
)

// Classic Blowfish known-answer vectors (Bruce Schneier's reference test
// suite, as reproduced by most independent Blowfish implementations).
var ecbVectors = []struct {
	key, plain, cipher string
}{
	{"0000000000000000", "0000000000000000", "4ef997456198dd78"},
	{"ffffffffffffffff", "ffffffffffffffff", "51866fd5b85ecb8a"},
	{"3000000000000000", "1000000000000001", "7d856f9a613063f2"},
	{"1111111111111111", "1111111111111111", "2466dd878b963c9d"},
	{"0123456789abcdef", "1111111111111111", "61f9c3802281b096"},
	{"1111111111111111", "0123456789abcdef", "7d0cc630afda1ec7"},
	{"0000000000000000", "ffffffffffffffff", "014933e0cdaff6e4"},
	{"ffffffffffffffff", "0000000000000000", "f21e9a77b71c49bc"},
	{"0123456789abcdef", "0000000000000000", "245946885754369a"},
	{"fedcba9876543210", "0123456789abcdef", "0aceab0fc6a0a28d"},
}

func TestEncryptKAT(t *testing.T) {
	for _, v := range ecbVectors {
		key, _ := hex.DecodeString(v.key)
		plain, _ := hex.DecodeString(v.plain)
		want, _ := hex.DecodeString(v.cipher)

		var ctx blowfish.Context
		if err := ctx.Init(key); err != nil {
			t.Fatalf("Init(%s): %v", v.key, err)
		}
		got := make([]byte, blowfish.BlockSize)
		ctx.Encrypt(got, plain)
		if !bytes.Equal(got, want) {
			t.Errorf("Encrypt(key=%s, plain=%s) = %x, want %x", v.key, v.plain, got, want)
		}

		back := make([]byte, blowfish.BlockSize)
		ctx.Decrypt(back, got)
		if !bytes.Equal(back, plain) {
			t.Errorf("Decrypt(Encrypt(plain)) = %x, want %x", back, plain)
		}
	}
}

func TestEkskeySetkeyRoundTrip(t *testing.T) {
	salt := []byte("0123456789abcdef")
	pass := []byte("correct horse battery staple")

	var a, b blowfish.Context
	if err := a.Ekskey(salt, pass); err != nil {
		t.Fatalf("Ekskey: %v", err)
	}
	if err := b.Ekskey(salt, pass); err != nil {
		t.Fatalf("Ekskey: %v", err)
	}
	for i := 0; i < 4; i++ {
		a.Setkey(pass)
		a.Setkey(salt)
		b.Setkey(pass)
		b.Setkey(salt)
	}

	plain := []byte("12345678")
	ca := make([]byte, blowfish.BlockSize)
	cb := make([]byte, blowfish.BlockSize)
	a.Encrypt(ca, plain)
	b.Encrypt(cb, plain)
	if !bytes.Equal(ca, cb) {
		t.Fatalf("two identical Ekskey/Setkey sequences diverged: %x vs %x", ca, cb)
	}

	var c blowfish.Context
	if err := c.Ekskey([]byte("different-salt!!"), pass); err != nil {
		t.Fatalf("Ekskey: %v", err)
	}
	cc := make([]byte, blowfish.BlockSize)
	c.Encrypt(cc, plain)
	if bytes.Equal(ca, cc) {
		t.Fatalf("different salts produced identical schedules")
	}
}

func TestInitNilKeyLoadsBaseTables(t *testing.T) {
	var withNil, withEks blowfish.Context
	if err := withNil.Init(nil); err != nil {
		t.Fatalf("Init(nil): %v", err)
	}
	if err := withEks.Ekskey([]byte("saltsalt"), []byte("pass")); err != nil {
		t.Fatalf("Ekskey: %v", err)
	}
	// Init(nil) only loads the base tables; it must not itself match an
	// Ekskey-derived schedule, but it must not panic or leave the
	// context unusable either.
	plain := []byte("abcdefgh")
	out := make([]byte, blowfish.BlockSize)
	withNil.Encrypt(out, plain)
	if len(out) != blowfish.BlockSize {
		t.Fatalf("unexpected output length")
	}
	eks := make([]byte, blowfish.BlockSize)
	withEks.Encrypt(eks, plain)
	if bytes.Equal(out, eks) {
		t.Fatalf("Init(nil) schedule matches an Ekskey-derived schedule")
	}
}
