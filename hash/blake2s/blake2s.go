// Package blake2s implements BLAKE2s keyed hashing, ported from demoz
// lib/blake2s.c: the 32-bit sibling of BLAKE2b with a 64-byte block, a
// 10-round G function, and the same sigma permutation table truncated to
// its first ten rows.
package blake2s

import "demozcrypt/demozerr"

const (
	// BlockSize is the compression block size in bytes.
	BlockSize = 64
	// MaxSize is the largest digest BLAKE2s can produce.
	MaxSize = 32
	// MaxKeySize is the largest key BLAKE2s accepts.
	MaxKeySize = 32
)

var iv = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var sigma = [10][16]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}

func ror32(x uint32, n uint) uint32 { return (x >> n) | (x << (32 - n)) }

func g(v *[16]uint32, a, b, c, d int, x, y uint32) {
	v[a] = v[a] + v[b] + x
	v[d] = ror32(v[d]^v[a], 16)
	v[c] = v[c] + v[d]
	v[b] = ror32(v[b]^v[c], 12)
	v[a] = v[a] + v[b] + y
	v[d] = ror32(v[d]^v[a], 8)
	v[c] = v[c] + v[d]
	v[b] = ror32(v[b]^v[c], 7)
}

// Context is the caller-owned BLAKE2s state.
type Context struct {
	state [8]uint32
	tsize [2]uint32
	buf   [BlockSize]byte
	count uint32
	dsize uint32
	done  bool
}

// Init resets ctx for an unkeyed digest of dsize bytes (1..32).
func (c *Context) Init(dsize uint32) error {
	return c.InitKeyed(dsize, nil)
}

// InitKeyed resets ctx for a keyed digest of dsize bytes.
func (c *Context) InitKeyed(dsize uint32, key []byte) error {
	if dsize < 1 || dsize > MaxSize {
		return demozerr.New(demozerr.ParamRange, "blake2s.Init", "digest size out of range")
	}
	if len(key) > MaxKeySize {
		return demozerr.New(demozerr.ParamRange, "blake2s.Init", "key too large")
	}

	*c = Context{dsize: dsize}
	c.state = iv
	param := uint32(dsize) | uint32(len(key))<<8 | uint32(1)<<16 | uint32(1)<<24
	c.state[0] ^= param

	if len(key) > 0 {
		var kb [BlockSize]byte
		copy(kb[:], key)
		c.Process(kb[:])
	}

	return nil
}

func (c *Context) compress(s []byte, last bool) {
	var m [16]uint32
	for i := 0; i < 16; i++ {
		m[i] = uint32(s[i*4]) | uint32(s[i*4+1])<<8 | uint32(s[i*4+2])<<16 | uint32(s[i*4+3])<<24
	}

	v := [16]uint32{
		c.state[0], c.state[1], c.state[2], c.state[3],
		c.state[4], c.state[5], c.state[6], c.state[7],
		iv[0], iv[1], iv[2], iv[3],
		iv[4] ^ c.tsize[0], iv[5] ^ c.tsize[1], iv[6], iv[7],
	}
	if last {
		v[14] = ^v[14]
	}

	for r := 0; r < 10; r++ {
		sg := sigma[r]
		g(&v, 0, 4, 8, 12, m[sg[0]], m[sg[1]])
		g(&v, 1, 5, 9, 13, m[sg[2]], m[sg[3]])
		g(&v, 2, 6, 10, 14, m[sg[4]], m[sg[5]])
		g(&v, 3, 7, 11, 15, m[sg[6]], m[sg[7]])
		g(&v, 0, 5, 10, 15, m[sg[8]], m[sg[9]])
		g(&v, 1, 6, 11, 12, m[sg[10]], m[sg[11]])
		g(&v, 2, 7, 8, 13, m[sg[12]], m[sg[13]])
		g(&v, 3, 4, 9, 14, m[sg[14]], m[sg[15]])
	}

	for i := 0; i < 8; i++ {
		c.state[i] ^= v[i] ^ v[i+8]
	}
}

func (c *Context) incCounter(n uint32) {
	c.tsize[0] += n
	if c.tsize[0] < n {
		c.tsize[1]++
	}
}

// Process feeds more input bytes into the digest.
func (c *Context) Process(s []byte) error {
	if c.done {
		return demozerr.New(demozerr.Misuse, "blake2s.Process", "context already finalized")
	}

	n := c.count

	if n > 0 {
		h := uint32(BlockSize) - n
		if uint32(len(s)) < h {
			h = uint32(len(s))
		}
		copy(c.buf[n:n+h], s[:h])
		n += h
		s = s[h:]
		if n != BlockSize || len(s) == 0 {
			c.count = n
			return nil
		}
		c.incCounter(BlockSize)
		c.compress(c.buf[:], false)
		n = 0
	}

	for len(s) > BlockSize {
		c.incCounter(BlockSize)
		c.compress(s[:BlockSize], false)
		s = s[BlockSize:]
	}

	n = uint32(len(s))
	copy(c.buf[:n], s)
	c.count = n

	return nil
}

// Finish compresses the final block with the last-block flag set.
func (c *Context) Finish() {
	if c.done {
		return
	}

	for i := c.count; i < BlockSize; i++ {
		c.buf[i] = 0
	}
	c.incCounter(c.count)
	c.compress(c.buf[:], true)

	c.done = true
}

// Sum returns the dsize-byte digest; valid only after Finish.
func (c *Context) Sum() []byte {
	out := make([]byte, c.dsize)
	for i := uint32(0); i < c.dsize; i++ {
		out[i] = byte(c.state[i/4] >> (8 * (i % 4)))
	}
	return out
}

// Sum256 computes the unkeyed 32-byte BLAKE2s digest of s in one call.
func Sum256(s []byte) []byte {
	var c Context
	c.Init(32)
	c.Process(s)
	c.Finish()
	return c.Sum()
}

// MAC computes the keyed BLAKE2s digest of s with the given key and output
// size.
func MAC(key, s []byte, dsize uint32) ([]byte, error) {
	var c Context
	if err := c.InitKeyed(dsize, key); err != nil {
		return nil, err
	}
	c.Process(s)
	c.Finish()
	return c.Sum(), nil
}
