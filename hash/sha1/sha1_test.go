package sha1

import (
	"encoding/hex"
	"testing"
)

func TestSumKnownAnswers(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "84983e441c3bd26ebaae4aa1f95129e5e54670f1"},
	}
	for _, tc := range cases {
		got := Sum([]byte(tc.in))
		gotHex := hex.EncodeToString(got[:])
		if gotHex != tc.want {
			t.Fatalf("Sum(%q) = %s, want %s", tc.in, gotHex, tc.want)
		}
	}
}

func TestContextProcessIncremental(t *testing.T) {
	var c Context
	c.Init()
	msg := []byte("abc")
	if err := c.Process(msg); err != nil {
		t.Fatalf("Process: %v", err)
	}
	c.Finish(uint64(len(msg)))
	got := c.Sum()

	want := Sum(msg)
	if got != want {
		t.Fatalf("incremental Sum = %x, want %x", got, want)
	}
}
