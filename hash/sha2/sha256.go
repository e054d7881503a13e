// Package sha2 implements the SHA-224/256/384/512 message digests
// (FIPS 180-4), ported from demoz lib/sha256.c and lib/sha512.c: shared
// 32-bit and 64-bit compression cores with distinct initial vectors and
// truncated output for the "224"/"384" variants.
package sha2

import "demozcrypt/demozerr"

const (
	// Size256 is the SHA-256 digest length in bytes.
	Size256 = 32
	// Size224 is the SHA-224 digest length in bytes.
	Size224 = 28
	// BlockSize256 is the SHA-256/224 compression block size.
	BlockSize256 = 64
)

var k256 = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

func ror32(x uint32, n uint32) uint32 { return (x >> n) | (x << (32 - n)) }

// Context256 is the caller-owned SHA-256/SHA-224 state.
type Context256 struct {
	state [8]uint32
	count uint32
	buf   [BlockSize256]byte
	done  bool
	is224 bool
}

// Init resets ctx to the SHA-256 initial state.
func (c *Context256) Init() {
	*c = Context256{}
	c.state = [8]uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}
}

// Init224 resets ctx to the SHA-224 initial state.
func (c *Context256) Init224() {
	*c = Context256{is224: true}
	c.state = [8]uint32{
		0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
		0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
	}
}

func (c *Context256) compress(s []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = uint32(s[i*4])<<24 | uint32(s[i*4+1])<<16 | uint32(s[i*4+2])<<8 | uint32(s[i*4+3])
	}
	for i := 16; i < 64; i++ {
		s0 := ror32(w[i-15], 7) ^ ror32(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := ror32(w[i-2], 17) ^ ror32(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, cc, d, e, f, g, h := c.state[0], c.state[1], c.state[2], c.state[3],
		c.state[4], c.state[5], c.state[6], c.state[7]

	for i := 0; i < 64; i++ {
		s1 := ror32(e, 6) ^ ror32(e, 11) ^ ror32(e, 25)
		ch := (e & f) ^ (^e & g)
		t1 := h + s1 + ch + k256[i] + w[i]
		s0 := ror32(a, 2) ^ ror32(a, 13) ^ ror32(a, 22)
		maj := (a & b) ^ (a & cc) ^ (b & cc)
		t2 := s0 + maj

		h = g
		g = f
		f = e
		e = d + t1
		d = cc
		cc = b
		b = a
		a = t1 + t2
	}

	c.state[0] += a
	c.state[1] += b
	c.state[2] += cc
	c.state[3] += d
	c.state[4] += e
	c.state[5] += f
	c.state[6] += g
	c.state[7] += h
}

// Process feeds more input bytes into the digest.
func (c *Context256) Process(s []byte) error {
	if c.done {
		return demozerr.New(demozerr.Misuse, "sha2.Process", "context already finalized")
	}

	n := c.count

	if n > 0 {
		h := uint32(BlockSize256) - n
		if uint32(len(s)) < h {
			h = uint32(len(s))
		}
		copy(c.buf[n:n+h], s[:h])
		n += h
		s = s[h:]
		if n != BlockSize256 {
			c.count = n
			return nil
		}
		c.compress(c.buf[:])
		n = 0
	}

	for len(s) >= BlockSize256 {
		c.compress(s[:BlockSize256])
		s = s[BlockSize256:]
	}

	n = uint32(len(s))
	if n > 0 {
		copy(c.buf[:n], s)
	}
	c.count = n

	return nil
}

// Finish pads and compresses the remaining partial block. total is the
// full message length in bytes across every Process call.
func (c *Context256) Finish(total uint64) {
	if c.done {
		return
	}

	var pad [BlockSize256]byte
	pad[0] = 0x80
	padLen := 1 + ((55 - int64(total%64) + 64) % 64)
	c.Process(pad[:padLen])

	length := total * 8
	for i := 0; i < 8; i++ {
		c.buf[63-i] = byte(length)
		length >>= 8
	}
	c.compress(c.buf[:])

	c.done = true
}

// Sum returns the 32-byte SHA-256 digest; valid only after Finish.
func (c *Context256) Sum() [Size256]byte {
	var out [Size256]byte
	for i := 0; i < 8; i++ {
		out[i*4] = byte(c.state[i] >> 24)
		out[i*4+1] = byte(c.state[i] >> 16)
		out[i*4+2] = byte(c.state[i] >> 8)
		out[i*4+3] = byte(c.state[i])
	}
	return out
}

// Sum224 returns the 28-byte SHA-224 digest (truncated SHA-256 state);
// valid only after Finish on a Context256 initialized via Init224.
func (c *Context256) Sum224() [Size224]byte {
	full := c.Sum()
	var out [Size224]byte
	copy(out[:], full[:Size224])
	return out
}

// Sum256 computes the SHA-256 digest of s in one call.
func Sum256(s []byte) [Size256]byte {
	var c Context256
	c.Init()
	c.Process(s)
	c.Finish(uint64(len(s)))
	return c.Sum()
}

// Sum224Bytes computes the SHA-224 digest of s in one call.
func Sum224Bytes(s []byte) [Size224]byte {
	var c Context256
	c.Init224()
	c.Process(s)
	c.Finish(uint64(len(s)))
	return c.Sum224()
}
