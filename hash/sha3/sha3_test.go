package sha3_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"demozcrypt/hash/sha3"
)

func TestSumEmptyKAT(t *testing.T) {
	cases := []struct {
		name string
		fn   func([]byte) []byte
		want string
	}{
		{"SHA3-256", sha3.Sum256, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{"SHA3-512", sha3.Sum512, "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26"},
	}
	for _, c := range cases {
		want, _ := hex.DecodeString(c.want)
		got := c.fn(nil)
		if !bytes.Equal(got, want) {
			t.Errorf("%s(\"\") = %x, want %x", c.name, got, want)
		}
	}
}

func TestProcessChunkingIsAssociative(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")
	want := sha3.Sum256(msg)

	var c sha3.Context
	if err := c.Init(sha3.Type256, 32); err != nil {
		t.Fatalf("Init: %v", err)
	}
	for i := 0; i < len(msg); i += 5 {
		end := i + 5
		if end > len(msg) {
			end = len(msg)
		}
		if err := c.Process(msg[i:end]); err != nil {
			t.Fatalf("Process: %v", err)
		}
	}
	c.Finish()
	got := c.Sum()
	if !bytes.Equal(got, want) {
		t.Errorf("chunked Sum = %x, want %x", got, want)
	}
}

func TestShakeExtendable(t *testing.T) {
	short := sha3.Shake128([]byte("abc"), 16)
	long := sha3.Shake128([]byte("abc"), 32)
	if !bytes.Equal(short, long[:16]) {
		t.Errorf("Shake128 output of length 16 is not a prefix of length 32: %x vs %x", short, long[:16])
	}
}
