package sha2_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"demozcrypt/hash/sha2"
)

func TestSum256KAT(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}
	for _, c := range cases {
		want, _ := hex.DecodeString(c.want)
		got := sha2.Sum256([]byte(c.in))
		if !bytes.Equal(got[:], want) {
			t.Errorf("Sum256(%q) = %x, want %x", c.in, got, want)
		}
	}
}

func TestSum224Empty(t *testing.T) {
	want, _ := hex.DecodeString("d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f")
	got := sha2.Sum224Bytes(nil)
	if !bytes.Equal(got[:], want) {
		t.Errorf("Sum224Bytes(\"\") = %x, want %x", got, want)
	}
}

func TestSum512Empty(t *testing.T) {
	want, _ := hex.DecodeString("cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e")
	got := sha2.Sum512(nil)
	if !bytes.Equal(got[:], want) {
		t.Errorf("Sum512(\"\") = %x, want %x", got, want)
	}
}

func TestSum384Empty(t *testing.T) {
	want, _ := hex.DecodeString("38b060a751ac96384cd9327eb1b1e36a21fdb71114be07434c0cc7bf63f6e1da274edebfe76f65fbd51ad2f14898b95b")
	got := sha2.Sum384Bytes(nil)
	if !bytes.Equal(got[:], want) {
		t.Errorf("Sum384Bytes(\"\") = %x, want %x", got, want)
	}
}

func TestProcessChunkingIsAssociative(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog, twice over for good measure")
	want := sha2.Sum256(msg)

	var c sha2.Context256
	c.Init()
	for i := 0; i < len(msg); i += 9 {
		end := i + 9
		if end > len(msg) {
			end = len(msg)
		}
		if err := c.Process(msg[i:end]); err != nil {
			t.Fatalf("Process: %v", err)
		}
	}
	c.Finish(uint64(len(msg)))
	got := c.Sum()
	if !bytes.Equal(got[:], want[:]) {
		t.Errorf("chunked Sum256 = %x, want %x", got, want)
	}
}
