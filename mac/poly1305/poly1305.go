// Package poly1305 implements the Poly1305 one-time authenticator
// (RFC 8439), ported from demoz lib/poly1305.c: the classic 26-bit,
// five-limb representation of the 130-bit accumulator and clamped r.
package poly1305

import "demozcrypt/demozerr"

const (
	// KeyLen is the required one-time key length in bytes.
	KeyLen = 32
	// TagLen is the authenticator tag length in bytes.
	TagLen = 16
	// BlockSize is the message block size in bytes.
	BlockSize = 16
)

// Context is the caller-owned Poly1305 state: a one-time-key accumulator,
// never reused across messages.
type Context struct {
	h     [5]uint32
	r     [5]uint32
	pad   [4]uint32
	buf   [BlockSize]byte
	count uint32
	done  bool
}

// Init sets up ctx with a fresh 32-byte one-time key (r || s).
func (c *Context) Init(key []byte) error {
	if len(key) != KeyLen {
		return demozerr.New(demozerr.ParamRange, "poly1305.Init", "key must be 32 bytes")
	}

	*c = Context{}

	t0 := le32(key[0:4])
	t1 := le32(key[4:8])
	t2 := le32(key[8:12])
	t3 := le32(key[12:16])

	c.r[0] = t0 & 0x3ffffff
	c.r[1] = ((t0 >> 26) | (t1 << 6)) & 0x3ffff03
	c.r[2] = ((t1 >> 20) | (t2 << 12)) & 0x3ffc0ff
	c.r[3] = ((t2 >> 14) | (t3 << 18)) & 0x3f03fff
	c.r[4] = (t3 >> 8) & 0x00fffff

	c.pad[0] = le32(key[16:20])
	c.pad[1] = le32(key[20:24])
	c.pad[2] = le32(key[24:28])
	c.pad[3] = le32(key[28:32])

	return nil
}

func le32(s []byte) uint32 {
	return uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
}

// block absorbs one 16-byte message block. padbit is 1 for a full block
// and 0 for the final, possibly short, padded block.
func (c *Context) block(s []byte, padbit uint32) {
	r0, r1, r2, r3, r4 := c.r[0], c.r[1], c.r[2], c.r[3], c.r[4]

	t0 := le32(s[0:4])
	t1 := le32(s[4:8])
	t2 := le32(s[8:12])
	t3 := le32(s[12:16])

	h0 := c.h[0] + (t0 & 0x3ffffff)
	h1 := c.h[1] + (((t0 >> 26) | (t1 << 6)) & 0x3ffffff)
	h2 := c.h[2] + (((t1 >> 20) | (t2 << 12)) & 0x3ffffff)
	h3 := c.h[3] + (((t2 >> 14) | (t3 << 18)) & 0x3ffffff)
	h4 := c.h[4] + ((t3 >> 8) | (padbit << 24))

	var d0, d1, d2, d3, d4 uint64

	d0 = uint64(h0)*uint64(r0) + uint64(h1)*5*uint64(r4) + uint64(h2)*5*uint64(r3) + uint64(h3)*5*uint64(r2) + uint64(h4)*5*uint64(r1)
	d1 = uint64(h0)*uint64(r1) + uint64(h1)*uint64(r0) + uint64(h2)*5*uint64(r4) + uint64(h3)*5*uint64(r3) + uint64(h4)*5*uint64(r2)
	d2 = uint64(h0)*uint64(r2) + uint64(h1)*uint64(r1) + uint64(h2)*uint64(r0) + uint64(h3)*5*uint64(r4) + uint64(h4)*5*uint64(r3)
	d3 = uint64(h0)*uint64(r3) + uint64(h1)*uint64(r2) + uint64(h2)*uint64(r1) + uint64(h3)*uint64(r0) + uint64(h4)*5*uint64(r4)
	d4 = uint64(h0)*uint64(r4) + uint64(h1)*uint64(r3) + uint64(h2)*uint64(r2) + uint64(h3)*uint64(r1) + uint64(h4)*uint64(r0)

	var carry uint64

	carry = d0 >> 26
	h0 = uint32(d0) & 0x3ffffff
	d1 += carry

	carry = d1 >> 26
	h1 = uint32(d1) & 0x3ffffff
	d2 += carry

	carry = d2 >> 26
	h2 = uint32(d2) & 0x3ffffff
	d3 += carry

	carry = d3 >> 26
	h3 = uint32(d3) & 0x3ffffff
	d4 += carry

	carry = d4 >> 26
	h4 = uint32(d4) & 0x3ffffff
	h0 += uint32(carry) * 5

	carry = uint64(h0 >> 26)
	h0 &= 0x3ffffff
	h1 += uint32(carry)

	c.h[0], c.h[1], c.h[2], c.h[3], c.h[4] = h0, h1, h2, h3, h4
}

// Process feeds more message bytes into the accumulator.
func (c *Context) Process(s []byte) error {
	if c.done {
		return demozerr.New(demozerr.Misuse, "poly1305.Process", "context already finalized")
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
		if n != BlockSize {
			c.count = n
			return nil
		}
		c.block(c.buf[:], 1)
		n = 0
	}

	for len(s) >= BlockSize {
		c.block(s[:BlockSize], 1)
		s = s[BlockSize:]
	}

	n = uint32(len(s))
	if n > 0 {
		copy(c.buf[:n], s)
	}
	c.count = n

	return nil
}

// Finish absorbs the final partial block (if any) and reduces the
// accumulator modulo 2^130-5, adding the pad to produce the tag.
func (c *Context) Finish() {
	if c.done {
		return
	}

	if c.count > 0 {
		var last [BlockSize]byte
		copy(last[:], c.buf[:c.count])
		last[c.count] = 1
		for i := c.count + 1; i < BlockSize; i++ {
			last[i] = 0
		}
		c.blockPartial(last[:])
	}

	h0, h1, h2, h3, h4 := c.h[0], c.h[1], c.h[2], c.h[3], c.h[4]

	var g0, g1, g2, g3, g4 uint32
	c2 := h1 >> 26
	h1 &= 0x3ffffff
	g2 = h2 + c2
	c3 := g2 >> 26
	g2 &= 0x3ffffff
	g3 = h3 + c3
	c4 := g3 >> 26
	g3 &= 0x3ffffff
	g4 = h4 + c4

	g0 = h0 + 5
	c0 := g0 >> 26
	g0 &= 0x3ffffff
	g1 = h1 + c0

	mask := (g4 >> 31) - 1
	g0 &= mask
	g1 &= mask
	g2 &= mask
	g3 &= mask
	g4 &= mask
	nmask := ^mask

	h0 = (h0 & nmask) | g0
	h1 = (h1 & nmask) | g1
	h2 = (h2 & nmask) | g2
	h3 = (h3 & nmask) | g3
	h4 = (h4 & nmask) | g4

	h0 = h0 | (h1 << 26)
	h1 = (h1 >> 6) | (h2 << 20)
	h2 = (h2 >> 12) | (h3 << 14)
	h3 = (h3 >> 18) | (h4 << 8)

	var f uint64
	f = uint64(h0) + uint64(c.pad[0])
	h0 = uint32(f)
	f = uint64(h1) + uint64(c.pad[1]) + (f >> 32)
	h1 = uint32(f)
	f = uint64(h2) + uint64(c.pad[2]) + (f >> 32)
	h2 = uint32(f)
	f = uint64(h3) + uint64(c.pad[3]) + (f >> 32)
	h3 = uint32(f)

	c.h[0], c.h[1], c.h[2], c.h[3] = h0, h1, h2, h3
	c.done = true
}

// blockPartial absorbs the already-padded final block without the
// full-block's implicit high bit (the caller encoded the 1 byte directly).
func (c *Context) blockPartial(s []byte) { c.block(s, 0) }

// Sum returns the 16-byte authentication tag; valid only after Finish.
func (c *Context) Sum() [TagLen]byte {
	var out [TagLen]byte
	out[0] = byte(c.h[0])
	out[1] = byte(c.h[0] >> 8)
	out[2] = byte(c.h[0] >> 16)
	out[3] = byte(c.h[0] >> 24)
	out[4] = byte(c.h[1])
	out[5] = byte(c.h[1] >> 8)
	out[6] = byte(c.h[1] >> 16)
	out[7] = byte(c.h[1] >> 24)
	out[8] = byte(c.h[2])
	out[9] = byte(c.h[2] >> 8)
	out[10] = byte(c.h[2] >> 16)
	out[11] = byte(c.h[2] >> 24)
	out[12] = byte(c.h[3])
	out[13] = byte(c.h[3] >> 8)
	out[14] = byte(c.h[3] >> 16)
	out[15] = byte(c.h[3] >> 24)
	return out
}

// Sum computes the Poly1305 tag of s under key in one call.
func Sum(s, key []byte) ([TagLen]byte, error) {
	var c Context
	if err := c.Init(key); err != nil {
		return [TagLen]byte{}, err
	}
	c.Process(s)
	c.Finish()
	return c.Sum(), nil
}
