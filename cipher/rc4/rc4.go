// Package rc4 implements the RC4 stream cipher, ported from demoz
// lib/rc4.c: a 256-byte S-box key schedule and the classic PRGA keystream
// loop, XORed directly into the caller's buffer in place.
package rc4

import "demozcrypt/demozerr"

// Context is the caller-owned RC4 stream state.
type Context struct {
	s    [256]byte
	i, j byte
}

// Init performs the key-scheduling algorithm for a 1..256 byte key.
func (c *Context) Init(key []byte) error {
	if len(key) < 1 || len(key) > 256 {
		return demozerr.New(demozerr.ParamRange, "rc4.Init", "key must be 1..256 bytes")
	}

	for i := 0; i < 256; i++ {
		c.s[i] = byte(i)
	}

	var j byte
	for i := 0; i < 256; i++ {
		j = j + c.s[i] + key[i%len(key)]
		c.s[i], c.s[j] = c.s[j], c.s[i]
	}
	c.i, c.j = 0, 0

	return nil
}

// Crypto XORs the keystream into buf in place (symmetric encrypt/decrypt).
func (c *Context) Crypto(buf []byte) {
	i, j := c.i, c.j
	for k := range buf {
		i++
		j += c.s[i]
		c.s[i], c.s[j] = c.s[j], c.s[i]
		buf[k] ^= c.s[c.s[i]+c.s[j]]
	}
	c.i, c.j = i, j
}
