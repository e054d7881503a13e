package totp_test

import (
	"testing"

	"demozcrypt/mac/hmac"
	"demozcrypt/otp/totp"
)

func TestCodeRFC6238SHA1Vector(t *testing.T) {
	key := []byte("12345678901234567890")
	// Unix time 59, step 30s -> counter 1; RFC 6238 Appendix B expects
	// the 8-digit code 94287082.
	const want = 94287082

	got, err := totp.Code(func() totp.Hasher { return hmac.NewSHA1() }, key, 1, 8)
	if err != nil {
		t.Fatalf("Code: %v", err)
	}
	if got != want {
		t.Fatalf("Code = %d, want %d", got, want)
	}
}

func TestCodeReducesOutOfRangeDigitCountModNine(t *testing.T) {
	key := []byte("12345678901234567890")
	newHasher := func() totp.Hasher { return hmac.NewSHA1() }

	// n=0 and n=9 both reduce to digPow[0]==1, i.e. an always-zero code.
	got0, err := totp.Code(newHasher, key, 1, 0)
	if err != nil {
		t.Fatalf("Code(n=0): %v", err)
	}
	if got0 != 0 {
		t.Fatalf("Code(n=0) = %d, want 0", got0)
	}

	got9, err := totp.Code(newHasher, key, 1, 9)
	if err != nil {
		t.Fatalf("Code(n=9): %v", err)
	}
	if got9 != 0 {
		t.Fatalf("Code(n=9) = %d, want 0", got9)
	}

	// n=10 reduces to digPow[1]==10, matching n=1's width.
	got10, err := totp.Code(newHasher, key, 1, 10)
	if err != nil {
		t.Fatalf("Code(n=10): %v", err)
	}
	got1, err := totp.Code(newHasher, key, 1, 1)
	if err != nil {
		t.Fatalf("Code(n=1): %v", err)
	}
	if got10 != got1 {
		t.Fatalf("Code(n=10) = %d, want %d (same as n=1)", got10, got1)
	}
}

func TestCodeChangesWithTimeBase(t *testing.T) {
	key := []byte("12345678901234567890")
	newHasher := func() totp.Hasher { return hmac.NewSHA1() }

	a, err := totp.Code(newHasher, key, 1, 6)
	if err != nil {
		t.Fatalf("Code: %v", err)
	}
	b, err := totp.Code(newHasher, key, 2, 6)
	if err != nil {
		t.Fatalf("Code: %v", err)
	}
	if a == b {
		t.Fatal("different time counters produced the same code")
	}
}
