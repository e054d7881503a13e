package hmac

import (
	"encoding/hex"
	"testing"
)

func TestHMACSHA1KnownAnswer(t *testing.T) {
	// RFC 2202 test case 1.
	key := make([]byte, 20)
	for i := range key {
		key[i] = 0x0b
	}
	const want = "b617318655057264e28bc0b6fb378c8ef146be00"

	h := New(NewSHA1, key)
	if err := h.Write([]byte("Hi There")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got := hex.EncodeToString(h.Sum())
	if got != want {
		t.Fatalf("HMAC-SHA1 = %s, want %s", got, want)
	}
}

func TestHMACSHA3_256DeterministicAndKeySensitive(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")
	keyA := make([]byte, NewSHA3_256().BlockSize())
	keyB := make([]byte, len(keyA))
	for i := range keyA {
		keyA[i] = byte(i)
		keyB[i] = byte(i + 1)
	}

	ha := New(NewSHA3_256, keyA)
	if err := ha.Write(msg); err != nil {
		t.Fatalf("Write: %v", err)
	}
	sumA := ha.Sum()

	ha2 := New(NewSHA3_256, keyA)
	if err := ha2.Write(msg); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if hex := sumA; !bytesEqual(hex, ha2.Sum()) {
		t.Fatalf("HMAC-SHA3-256 not deterministic")
	}

	hb := New(NewSHA3_256, keyB)
	if err := hb.Write(msg); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if bytesEqual(sumA, hb.Sum()) {
		t.Fatalf("different keys produced the same HMAC-SHA3-256 digest")
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestHMACSHA256KnownAnswer(t *testing.T) {
	// RFC 4231 test case 1.
	key := make([]byte, 20)
	for i := range key {
		key[i] = 0x0b
	}
	const want = "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7"

	h := New(NewSHA256, key)
	h.Write([]byte("Hi There"))
	got := hex.EncodeToString(h.Sum())
	if got != want {
		t.Fatalf("HMAC-SHA256 = %s, want %s", got, want)
	}
}

func TestSum1MatchesIncremental(t *testing.T) {
	key := []byte("key")
	msg := []byte("The quick brown fox jumps over the lazy dog")

	h := New(NewSHA256, key)
	h.Write(msg)
	incremental := h.Sum()

	oneShot := Sum1(NewSHA256, key, msg)
	if hex.EncodeToString(incremental) != hex.EncodeToString(oneShot) {
		t.Fatalf("Sum1 = %x, incremental = %x", oneShot, incremental)
	}
}

func TestHMACDifferentKeysDiffer(t *testing.T) {
	msg := []byte("same message")
	a := Sum1(NewSHA256, []byte("key-a"), msg)
	b := Sum1(NewSHA256, []byte("key-b"), msg)
	if hex.EncodeToString(a) == hex.EncodeToString(b) {
		t.Fatal("HMAC with different keys produced identical output")
	}
}
