package pbkdf2_test

import (
	"encoding/hex"
	"testing"

	"demozcrypt/kdf/pbkdf2"
	"demozcrypt/mac/hmac"
)

func TestDeriveRFC6070Vector3(t *testing.T) {
	const want = "4b007901b765489abead49d926f721d065a429c1"
	dk, err := pbkdf2.Derive(func() pbkdf2.Hasher { return hmac.NewSHA1() }, 20, []byte("password"), []byte("salt"), 4096, 20)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	got := hex.EncodeToString(dk)
	if got != want {
		t.Fatalf("PBKDF2-HMAC-SHA1 = %s, want %s", got, want)
	}
}

func TestDeriveRFC6070Vector1(t *testing.T) {
	const want = "0c60c80f961f0e71f3a9b524af6012062fe037a6"
	dk, err := pbkdf2.Derive(func() pbkdf2.Hasher { return hmac.NewSHA1() }, 20, []byte("password"), []byte("salt"), 1, 20)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	got := hex.EncodeToString(dk)
	if got != want {
		t.Fatalf("PBKDF2-HMAC-SHA1 (1 iter) = %s, want %s", got, want)
	}
}

func TestDeriveDifferentIterationsDiffer(t *testing.T) {
	newHasher := func() pbkdf2.Hasher { return hmac.NewSHA1() }
	a, err := pbkdf2.Derive(newHasher, 20, []byte("password"), []byte("salt"), 1, 20)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	b, err := pbkdf2.Derive(newHasher, 20, []byte("password"), []byte("salt"), 2, 20)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if hex.EncodeToString(a) == hex.EncodeToString(b) {
		t.Fatal("different iteration counts produced identical output")
	}
}
