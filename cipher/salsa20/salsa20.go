// Package salsa20 implements the Salsa20 stream cipher, ported from demoz
// lib/salsa20.c: a 16-word state (constant/key/nonce/counter), the classic
// column-then-row quarter-round block function, and a little-endian
// 64-bit block counter threaded across Crypto calls.
package salsa20

import "demozcrypt/demozerr"

// KeyLen and NonceLen are the sizes demoz's salsa20 expects.
const (
	KeyLen   = 32
	NonceLen = 8
	BlockSize = 64
	rounds   = 20
)

var constant = []byte("expand 32-byte k")

// Context is the caller-owned Salsa20 stream state.
type Context struct {
	state [16]uint32
	out   [16]uint32
	off   int
}

func pack4(s []byte) uint32 {
	return uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
}

func rotl32(x uint32, n uint) uint32 { return (x << n) | (x >> (32 - n)) }

func qr(x *[16]uint32, a, b, c, d int) {
	x[b] ^= rotl32(x[a]+x[d], 7)
	x[c] ^= rotl32(x[b]+x[a], 9)
	x[d] ^= rotl32(x[c]+x[b], 13)
	x[a] ^= rotl32(x[d]+x[c], 18)
}

// Init lays out the 16-word state from a 32-byte key, an 8-byte nonce, and
// an initial 8-byte little-endian block counter.
func (c *Context) Init(key, nonce []byte, counter uint64) error {
	if len(key) != KeyLen {
		return demozerr.New(demozerr.ParamRange, "salsa20.Init", "key must be 32 bytes")
	}
	if len(nonce) != NonceLen {
		return demozerr.New(demozerr.ParamRange, "salsa20.Init", "nonce must be 8 bytes")
	}

	c.state[0] = pack4(constant[0:4])
	c.state[5] = pack4(constant[4:8])
	c.state[10] = pack4(constant[8:12])
	c.state[15] = pack4(constant[12:16])

	c.state[1] = pack4(key[0:4])
	c.state[2] = pack4(key[4:8])
	c.state[3] = pack4(key[8:12])
	c.state[4] = pack4(key[12:16])
	c.state[11] = pack4(key[16:20])
	c.state[12] = pack4(key[20:24])
	c.state[13] = pack4(key[24:28])
	c.state[14] = pack4(key[28:32])

	c.state[6] = pack4(nonce[0:4])
	c.state[7] = pack4(nonce[4:8])

	c.state[8] = uint32(counter)
	c.state[9] = uint32(counter >> 32)

	c.off = BlockSize
	return nil
}

// Block runs the n-round (even) Salsa20 core, producing one 64-byte
// keystream block in ctx's output buffer.
func (c *Context) Block(n int) {
	c.out = c.state

	for i := 0; i < n; i += 2 {
		qr(&c.out, 0, 4, 8, 12)
		qr(&c.out, 5, 9, 13, 1)
		qr(&c.out, 10, 14, 2, 6)
		qr(&c.out, 15, 3, 7, 11)

		qr(&c.out, 0, 1, 2, 3)
		qr(&c.out, 5, 6, 7, 4)
		qr(&c.out, 10, 11, 8, 9)
		qr(&c.out, 15, 12, 13, 14)
	}

	for i := range c.out {
		c.out[i] += c.state[i]
	}
	c.off = 0
}

func (c *Context) keystreamByte(i int) byte {
	w := c.out[i/4]
	return byte(w >> (8 * uint(i%4)))
}

// Crypto XORs the keystream into buf in place (symmetric encrypt/decrypt),
// advancing the block counter as needed.
func (c *Context) Crypto(buf []byte) {
	for len(buf) > 0 {
		if c.off >= BlockSize {
			c.Block(rounds)
		}

		n := BlockSize - c.off
		if n > len(buf) {
			n = len(buf)
		}
		for i := 0; i < n; i++ {
			buf[i] ^= c.keystreamByte(c.off + i)
		}
		buf = buf[n:]
		c.off += n

		if c.off >= BlockSize {
			c.state[8]++
			if c.state[8] == 0 {
				c.state[9]++
			}
		}
	}
}
