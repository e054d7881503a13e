// Package md5 implements the MD5 message digest (RFC 1321), ported from
// demoz lib/md5.c: a 64-byte block compression with the four round
// constants tables and little-endian digest output.
package md5

import "demozcrypt/demozerr"

const (
	// Size is the digest length in bytes.
	Size = 16
	// BlockSize is the compression block size in bytes.
	BlockSize = 64
)

var shift = [64]uint32{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

var tableK = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

func rotl(x uint32, n uint32) uint32 { return (x << n) | (x >> (32 - n)) }

// Context is the caller-owned MD5 state: a fixed-size value with no heap
// pointers, safe to embed or stack-allocate. The total message length is
// not tracked in the context; the caller passes it to Finish.
type Context struct {
	state [4]uint32
	count uint32
	buf   [BlockSize]byte
	done  bool
}

// Init resets ctx to the MD5 initial state.
func (c *Context) Init() {
	*c = Context{}
	c.state[0] = 0x67452301
	c.state[1] = 0xefcdab89
	c.state[2] = 0x98badcfe
	c.state[3] = 0x10325476
}

func (c *Context) compress(s []byte) {
	var m [16]uint32
	for i := 0; i < 16; i++ {
		m[i] = uint32(s[i*4]) | uint32(s[i*4+1])<<8 | uint32(s[i*4+2])<<16 | uint32(s[i*4+3])<<24
	}

	a, b, cc, d := c.state[0], c.state[1], c.state[2], c.state[3]

	for i := 0; i < 64; i++ {
		var f uint32
		var g int

		switch {
		case i < 16:
			f = (b & cc) | (^b & d)
			g = i
		case i < 32:
			f = (d & b) | (^d & cc)
			g = (5*i + 1) % 16
		case i < 48:
			f = b ^ cc ^ d
			g = (3*i + 5) % 16
		default:
			f = cc ^ (b | ^d)
			g = (7 * i) % 16
		}

		f += a + tableK[i] + m[g]
		a = d
		d = cc
		cc = b
		b += rotl(f, shift[i])
	}

	c.state[0] += a
	c.state[1] += b
	c.state[2] += cc
	c.state[3] += d
}

// Process feeds more input bytes into the digest. It may be called any
// number of times before Finish.
func (c *Context) Process(s []byte) error {
	if c.done {
		return demozerr.New(demozerr.Misuse, "md5.Process", "context already finalized")
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

// Finish pads and compresses the remaining partial block, leaving the
// little-endian digest ready to read via Sum. total is the full message
// length in bytes across every Process call; it is not derivable from the
// context alone since only the current block's count is kept. No further
// Process calls are permitted afterward.
func (c *Context) Finish(total uint64) {
	if c.done {
		return
	}

	var pad [BlockSize]byte
	pad[0] = 0x80
	padLen := 1 + ((119 - int(total%64)) % 64)
	c.Process(pad[:padLen])

	length := total * 8
	var lenBuf [8]byte
	for i := 0; i < 8; i++ {
		lenBuf[i] = byte(length)
		length >>= 8
	}
	// lenBuf overwrites the last 8 bytes of the now-zero-padded block.
	copy(c.buf[BlockSize-8:], lenBuf[:])
	c.compress(c.buf[:])

	c.done = true
}

// Sum returns the Size-byte digest; valid only after Finish.
func (c *Context) Sum() [Size]byte {
	var out [Size]byte
	for i := 0; i < 4; i++ {
		out[i*4] = byte(c.state[i])
		out[i*4+1] = byte(c.state[i] >> 8)
		out[i*4+2] = byte(c.state[i] >> 16)
		out[i*4+3] = byte(c.state[i] >> 24)
	}
	return out
}

// Sum computes the MD5 digest of s in one call.
func Sum(s []byte) [Size]byte {
	var c Context
	c.Init()
	c.Process(s)
	c.Finish(uint64(len(s)))
	return c.Sum()
}
