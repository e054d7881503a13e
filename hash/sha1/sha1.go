// Package sha1 implements the SHA-1 message digest, ported from demoz
// lib/sha1.c: an 80-round Merkle-Damgard compression with big-endian
// digest output.
package sha1

import "demozcrypt/demozerr"

const (
	// Size is the digest length in bytes.
	Size = 20
	// BlockSize is the compression block size in bytes.
	BlockSize = 64
)

const (
	k1 = 0x5a827999
	k2 = 0x6ed9eba1
	k3 = 0x8f1bbcdc
	k4 = 0xca62c1d6
)

func rol(x uint32, n uint32) uint32 { return (x << n) | (x >> (32 - n)) }

func f1(b, c, d uint32) uint32 { return d ^ (b & (c ^ d)) }
func f2(b, c, d uint32) uint32 { return b ^ c ^ d }
func f3(b, c, d uint32) uint32 { return (b & c) | (d & (b | c)) }

// Context is the caller-owned SHA-1 state.
type Context struct {
	state [5]uint32
	count uint32
	buf   [BlockSize]byte
	done  bool
}

// Init resets ctx to the SHA-1 initial state.
func (c *Context) Init() {
	*c = Context{}
	c.state[0] = 0x67452301
	c.state[1] = 0xefcdab89
	c.state[2] = 0x98badcfe
	c.state[3] = 0x10325476
	c.state[4] = 0xc3d2e1f0
}

func (c *Context) compress(s []byte) {
	var m [80]uint32
	for i := 0; i < 16; i++ {
		m[i] = uint32(s[i*4])<<24 | uint32(s[i*4+1])<<16 | uint32(s[i*4+2])<<8 | uint32(s[i*4+3])
	}
	for i := 16; i < 80; i++ {
		m[i] = rol(m[i-3]^m[i-8]^m[i-14]^m[i-16], 1)
	}

	a, b, cc, d, e := c.state[0], c.state[1], c.state[2], c.state[3], c.state[4]

	for i := 0; i < 80; i++ {
		var tmp uint32
		switch {
		case i < 20:
			tmp = rol(a, 5) + f1(b, cc, d) + e + k1 + m[i]
		case i < 40:
			tmp = rol(a, 5) + f2(b, cc, d) + e + k2 + m[i]
		case i < 60:
			tmp = rol(a, 5) + f3(b, cc, d) + e + k3 + m[i]
		default:
			tmp = rol(a, 5) + f2(b, cc, d) + e + k4 + m[i]
		}
		e = d
		d = cc
		cc = rol(b, 30)
		b = a
		a = tmp
	}

	c.state[0] += a
	c.state[1] += b
	c.state[2] += cc
	c.state[3] += d
	c.state[4] += e
}

// Process feeds more input bytes into the digest.
func (c *Context) Process(s []byte) error {
	if c.done {
		return demozerr.New(demozerr.Misuse, "sha1.Process", "context already finalized")
	}

	n := c.count

	if n > 0 {
		h := BlockSize - n
		if uint32(len(s)) < h {
			h = uint32(len(s))
		}
		copy(c.buf[n:n+h], s[:h])
		n += h
		s = s[h:]
		if n != BlockSize {
			c.count = n
			return nil
		}
		c.compress(c.buf[:])
		n = 0
	}

	for len(s) >= BlockSize {
		c.compress(s[:BlockSize])
		s = s[BlockSize:]
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
func (c *Context) Finish(total uint64) {
	if c.done {
		return
	}

	var pad [BlockSize]byte
	pad[0] = 0x80
	padLen := 1 + ((119 - int(total%64)) % 64)
	c.Process(pad[:padLen])

	length := total * 8
	for i := 0; i < 8; i++ {
		c.buf[63-i] = byte(length)
		length >>= 8
	}
	c.compress(c.buf[:])

	c.done = true
}

// Sum returns the Size-byte digest; valid only after Finish.
func (c *Context) Sum() [Size]byte {
	var out [Size]byte
	for i := 0; i < 5; i++ {
		out[i*4] = byte(c.state[i] >> 24)
		out[i*4+1] = byte(c.state[i] >> 16)
		out[i*4+2] = byte(c.state[i] >> 8)
		out[i*4+3] = byte(c.state[i])
	}
	return out
}

// Sum computes the SHA-1 digest of s in one call.
func Sum(s []byte) [Size]byte {
	var c Context
	c.Init()
	c.Process(s)
	c.Finish(uint64(len(s)))
	return c.Sum()
}
