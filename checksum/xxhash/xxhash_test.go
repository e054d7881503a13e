package xxhash_test

import (
	"testing"

	"demozcrypt/checksum/xxhash"
)

func TestSum32Empty(t *testing.T) {
	if got, want := xxhash.Sum32(nil, 0), uint32(0x02cc5d05); got != want {
		t.Errorf("Sum32(\"\", seed=0) = %#x, want %#x", got, want)
	}
}

func TestSum64Empty(t *testing.T) {
	if got, want := xxhash.Sum64(nil, 0), uint64(0xef46db3751d8e999); got != want {
		t.Errorf("Sum64(\"\", seed=0) = %#x, want %#x", got, want)
	}
}

func TestSeedChangesDigest(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")
	if xxhash.Sum32(msg, 0) == xxhash.Sum32(msg, 1) {
		t.Errorf("Sum32 did not change with seed")
	}
	if xxhash.Sum64(msg, 0) == xxhash.Sum64(msg, 1) {
		t.Errorf("Sum64 did not change with seed")
	}
}

func TestProcess32ChunkingIsAssociative(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog, repeated for a longer block length")
	want := xxhash.Sum32(msg, 0)

	var c xxhash.Context32
	c.Init32(0)
	for i := 0; i < len(msg); i += 13 {
		end := i + 13
		if end > len(msg) {
			end = len(msg)
		}
		c.Process32(msg[i:end])
	}
	if got := c.Finish32(uint64(len(msg))); got != want {
		t.Errorf("chunked Sum32 = %#x, want %#x", got, want)
	}
}

func TestProcess64ChunkingIsAssociative(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog, repeated for a longer block length")
	want := xxhash.Sum64(msg, 0)

	var c xxhash.Context64
	c.Init64(0)
	for i := 0; i < len(msg); i += 13 {
		end := i + 13
		if end > len(msg) {
			end = len(msg)
		}
		c.Process64(msg[i:end])
	}
	if got := c.Finish64(uint64(len(msg))); got != want {
		t.Errorf("chunked Sum64 = %#x, want %#x", got, want)
	}
}
