// Package xxhash implements the xxHash32/64 non-cryptographic checksums,
// ported from demoz lib/xxhash32.c: four 32-bit accumulator lanes folded
// 16 bytes at a time, a seed-dependent short-input path, and RFC-less but
// well-known avalanche mixing at the end.
package xxhash

const (
	BlockSize32 = 16

	prime32_1 = 0x9e3779b1
	prime32_2 = 0x85ebca77
	prime32_3 = 0xc2b2ae3d
	prime32_4 = 0x27d4eb2f
	prime32_5 = 0x165667b1
)

func rotl32(x uint32, n uint) uint32 { return (x << n) | (x >> (32 - n)) }

func le32(s []byte) uint32 {
	return uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
}

// Context32 is the caller-owned xxHash32 streaming state.
type Context32 struct {
	state [4]uint32
	buf   [BlockSize32]byte
	count uint32
	seed  uint32
}

// Init32 seeds an xxHash32 context (seed 0 for the unseeded variant).
func (c *Context32) Init32(seed uint32) {
	c.seed = seed
	c.state[0] = seed + prime32_1 + prime32_2
	c.state[1] = seed + prime32_2
	c.state[2] = seed
	c.state[3] = seed - prime32_1
	c.count = 0
}

func (c *Context32) compress(s []byte) {
	a, b, cc, d := c.state[0], c.state[1], c.state[2], c.state[3]

	a += le32(s[0:4]) * prime32_2
	a = rotl32(a, 13) * prime32_1
	b += le32(s[4:8]) * prime32_2
	b = rotl32(b, 13) * prime32_1
	cc += le32(s[8:12]) * prime32_2
	cc = rotl32(cc, 13) * prime32_1
	d += le32(s[12:16]) * prime32_2
	d = rotl32(d, 13) * prime32_1

	c.state[0], c.state[1], c.state[2], c.state[3] = a, b, cc, d
}

// Process32 folds s into the running state, buffering any partial block.
func (c *Context32) Process32(s []byte) {
	n := int(c.count)
	if n > 0 {
		h := BlockSize32 - n
		if len(s) < h {
			h = len(s)
		}
		copy(c.buf[n:], s[:h])
		n += h
		s = s[h:]
		if n != BlockSize32 {
			c.count = uint32(n)
			return
		}
		c.compress(c.buf[:])
		n = 0
	}

	for len(s) >= BlockSize32 {
		c.compress(s[:BlockSize32])
		s = s[BlockSize32:]
	}

	n = len(s)
	if n > 0 {
		copy(c.buf[:], s)
	}
	c.count = uint32(n)
}

// Finish32 processes the remaining buffered bytes and returns the digest.
// total is the full accumulated message length.
func (c *Context32) Finish32(total uint64) uint32 {
	var hash uint32
	if total < BlockSize32 {
		hash = c.seed + prime32_5
	} else {
		a, b, cc, d := c.state[0], c.state[1], c.state[2], c.state[3]
		hash = rotl32(a, 1) + rotl32(b, 7) + rotl32(cc, 12) + rotl32(d, 18)
	}
	hash += uint32(total)

	p := c.buf[:c.count]
	for len(p) >= 4 {
		hash += le32(p[0:4]) * prime32_3
		hash = rotl32(hash, 17) * prime32_4
		p = p[4:]
	}
	for len(p) > 0 {
		hash += uint32(p[0]) * prime32_5
		hash = rotl32(hash, 11) * prime32_1
		p = p[1:]
	}

	hash ^= hash >> 15
	hash *= prime32_2
	hash ^= hash >> 13
	hash *= prime32_3
	hash ^= hash >> 16

	return hash
}

// Sum32 computes the xxHash32 digest of s under seed in a single call.
func Sum32(s []byte, seed uint32) uint32 {
	var c Context32
	c.Init32(seed)
	c.Process32(s)
	return c.Finish32(uint64(len(s)))
}
