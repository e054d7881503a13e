// Package sha3 implements Keccak-f[1600] sponge hashing (FIPS 202):
// SHA3-224/256/384/512 and the SHAKE128/SHAKE256 extendable-output
// functions, ported from demoz lib/sha3.c's keccak_f1600 permutation, rate
// table and domain-separated padding.
package sha3

import "demozcrypt/demozerr"

// Type selects the fixed-output or XOF variant, matching the original's
// SHA3_*_TYPE constants.
type Type int

const (
	Type224 Type = iota + 1
	Type256
	Type384
	Type512
	TypeShake128
	TypeShake256
)

const stateSize = 200 // 5*5*8 bytes
const rounds = 24

var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

var rotc = [25]uint{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// piLane[i] gives the source lane index for destination lane i under the
// Pi step, using the standard row-major 5x5 flattening.
var piLane = [25]int{
	0, 6, 12, 18, 24,
	3, 9, 10, 16, 22,
	1, 7, 13, 19, 20,
	4, 5, 11, 17, 23,
	2, 8, 14, 15, 21,
}

func rotl64(x uint64, n uint) uint64 {
	if n == 0 {
		return x
	}
	return (x << n) | (x >> (64 - n))
}

// keccakF1600 applies the 24-round Keccak permutation to a flattened
// 25-lane state.
func keccakF1600(a *[25]uint64) {
	var b [25]uint64
	var c [5]uint64
	var d [5]uint64

	for round := 0; round < rounds; round++ {
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
		}
		for i := 0; i < 25; i++ {
			a[i] ^= d[i%5]
		}

		for i := 0; i < 25; i++ {
			b[i] = rotl64(a[piLane[i]], rotc[piLane[i]])
		}

		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				i := x + 5*y
				a[i] = b[i] ^ (^b[(x+1)%5+5*y] & b[(x+2)%5+5*y])
			}
		}

		a[0] ^= rc[round]
	}
}

func bytesToState(buf []byte) [25]uint64 {
	var s [25]uint64
	for i := 0; i < 25; i++ {
		off := i * 8
		if off >= len(buf) {
			break
		}
		var v uint64
		for j := 0; j < 8 && off+j < len(buf); j++ {
			v |= uint64(buf[off+j]) << (8 * j)
		}
		s[i] = v
	}
	return s
}

func stateToBytes(s *[25]uint64, out []byte) {
	for i := 0; i < len(out)/8+1 && i < 25; i++ {
		off := i * 8
		for j := 0; j < 8 && off+j < len(out); j++ {
			out[off+j] = byte(s[i] >> (8 * j))
		}
	}
}

// Context is the caller-owned sponge state shared by every SHA3/SHAKE
// instance, distinguished by rate and padding byte.
type Context struct {
	state   [25]uint64
	buf     [stateSize]byte
	count   uint32
	rate    uint32
	dsize   uint32
	pad     byte
	done    bool
	squeeze uint32 // bytes already squeezed, for XOF reads
}

func (c *Context) absorbBlock() {
	var blk [25]uint64
	blk = bytesToState(c.buf[:c.rate])
	for i := 0; i < 25; i++ {
		c.state[i] ^= blk[i]
	}
	keccakF1600(&c.state)
}

// Init configures ctx for typ with the given output size in bytes (ignored
// for the fixed variants, required for the SHAKE XOFs).
func (c *Context) Init(typ Type, dsize uint32) error {
	*c = Context{}

	switch typ {
	case Type224:
		c.rate, c.dsize, c.pad = 144, 28, 0x06
	case Type256:
		c.rate, c.dsize, c.pad = 136, 32, 0x06
	case Type384:
		c.rate, c.dsize, c.pad = 104, 48, 0x06
	case Type512:
		c.rate, c.dsize, c.pad = 72, 64, 0x06
	case TypeShake128:
		c.rate, c.dsize, c.pad = 168, dsize, 0x1f
	case TypeShake256:
		c.rate, c.dsize, c.pad = 136, dsize, 0x1f
	default:
		return demozerr.New(demozerr.ParamRange, "sha3.Init", "unknown type")
	}
	return nil
}

// Process feeds more input bytes into the sponge.
func (c *Context) Process(s []byte) error {
	if c.done {
		return demozerr.New(demozerr.Misuse, "sha3.Process", "context already finalized")
	}

	n := c.count
	rate := c.rate

	if n > 0 {
		h := rate - n
		if uint32(len(s)) < h {
			h = uint32(len(s))
		}
		copy(c.buf[n:n+h], s[:h])
		n += h
		s = s[h:]
		if n != rate {
			c.count = n
			return nil
		}
		c.absorbBlock()
		n = 0
	}

	for uint32(len(s)) >= rate {
		copy(c.buf[:rate], s[:rate])
		c.absorbBlock()
		s = s[rate:]
	}

	n = uint32(len(s))
	if n > 0 {
		copy(c.buf[:n], s)
	}
	c.count = n

	return nil
}

// Finish applies the domain-separated pad10*1 padding and performs the
// final absorb. No further Process calls are permitted afterward.
func (c *Context) Finish() {
	if c.done {
		return
	}

	for i := c.count; i < c.rate; i++ {
		c.buf[i] = 0
	}
	c.buf[c.count] = c.pad
	c.buf[c.rate-1] |= 0x80
	c.absorbBlock()

	c.done = true
}

// Sum returns the fixed-size digest for a SHA3-* context.
func (c *Context) Sum() []byte {
	out := make([]byte, c.dsize)
	c.squeezeInto(out)
	return out
}

// Squeeze draws len(out) bytes of XOF output from a SHAKE context,
// advancing the sponge as needed across repeated calls.
func (c *Context) Squeeze(out []byte) {
	c.squeezeInto(out)
}

func (c *Context) squeezeInto(out []byte) {
	pos := 0
	for pos < len(out) {
		avail := c.rate - c.squeeze
		if avail == 0 {
			keccakF1600(&c.state)
			c.squeeze = 0
			avail = c.rate
		}

		var block [stateSize]byte
		stateToBytes(&c.state, block[:c.rate])

		n := uint32(len(out) - pos)
		if n > avail {
			n = avail
		}
		copy(out[pos:], block[c.squeeze:c.squeeze+n])
		c.squeeze += n
		pos += int(n)
	}
}

// Sum224 computes the SHA3-224 digest of s in one call.
func Sum224(s []byte) []byte { return sumFixed(Type224, s) }

// Sum256 computes the SHA3-256 digest of s in one call.
func Sum256(s []byte) []byte { return sumFixed(Type256, s) }

// Sum384 computes the SHA3-384 digest of s in one call.
func Sum384(s []byte) []byte { return sumFixed(Type384, s) }

// Sum512 computes the SHA3-512 digest of s in one call.
func Sum512(s []byte) []byte { return sumFixed(Type512, s) }

func sumFixed(typ Type, s []byte) []byte {
	var c Context
	c.Init(typ, 0)
	c.Process(s)
	c.Finish()
	return c.Sum()
}

// Shake128 computes n bytes of SHAKE128 output for s in one call.
func Shake128(s []byte, n int) []byte { return shakeSum(TypeShake128, s, n) }

// Shake256 computes n bytes of SHAKE256 output for s in one call.
func Shake256(s []byte, n int) []byte { return shakeSum(TypeShake256, s, n) }

func shakeSum(typ Type, s []byte, n int) []byte {
	var c Context
	c.Init(typ, uint32(n))
	c.Process(s)
	c.Finish()
	out := make([]byte, n)
	c.Squeeze(out)
	return out
}
