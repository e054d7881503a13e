// Package scrypt implements the scrypt password-based key derivation
// function (RFC 7914), ported from demoz lib/scrypt.c: PBKDF2-SHA256
// bootstrapping around a Salsa20/8-based BlockMix/ROMix memory-hard core.
package scrypt

import (
	"demozcrypt/demozerr"
	"demozcrypt/kdf/pbkdf2"
	"demozcrypt/mac/hmac"
)

const elementSize = 64 // one salsa20/8 block in bytes

func rotl32(x uint32, n uint32) uint32 { return (x << n) | (x >> (32 - n)) }

func salsa208Block(state *[16]uint32) {
	tmp := *state

	for i := 0; i < 8; i += 2 {
		tmp[4] ^= rotl32(tmp[0]+tmp[12], 7)
		tmp[8] ^= rotl32(tmp[4]+tmp[0], 9)
		tmp[12] ^= rotl32(tmp[8]+tmp[4], 13)
		tmp[0] ^= rotl32(tmp[12]+tmp[8], 18)

		tmp[9] ^= rotl32(tmp[5]+tmp[1], 7)
		tmp[13] ^= rotl32(tmp[9]+tmp[5], 9)
		tmp[1] ^= rotl32(tmp[13]+tmp[9], 13)
		tmp[5] ^= rotl32(tmp[1]+tmp[13], 18)

		tmp[14] ^= rotl32(tmp[10]+tmp[6], 7)
		tmp[2] ^= rotl32(tmp[14]+tmp[10], 9)
		tmp[6] ^= rotl32(tmp[2]+tmp[14], 13)
		tmp[10] ^= rotl32(tmp[6]+tmp[2], 18)

		tmp[3] ^= rotl32(tmp[15]+tmp[11], 7)
		tmp[7] ^= rotl32(tmp[3]+tmp[15], 9)
		tmp[11] ^= rotl32(tmp[7]+tmp[3], 13)
		tmp[15] ^= rotl32(tmp[11]+tmp[7], 18)

		tmp[1] ^= rotl32(tmp[0]+tmp[3], 7)
		tmp[2] ^= rotl32(tmp[1]+tmp[0], 9)
		tmp[3] ^= rotl32(tmp[2]+tmp[1], 13)
		tmp[0] ^= rotl32(tmp[3]+tmp[2], 18)

		tmp[6] ^= rotl32(tmp[5]+tmp[4], 7)
		tmp[7] ^= rotl32(tmp[6]+tmp[5], 9)
		tmp[4] ^= rotl32(tmp[7]+tmp[6], 13)
		tmp[5] ^= rotl32(tmp[4]+tmp[7], 18)

		tmp[11] ^= rotl32(tmp[10]+tmp[9], 7)
		tmp[8] ^= rotl32(tmp[11]+tmp[10], 9)
		tmp[9] ^= rotl32(tmp[8]+tmp[11], 13)
		tmp[10] ^= rotl32(tmp[9]+tmp[8], 18)

		tmp[12] ^= rotl32(tmp[15]+tmp[14], 7)
		tmp[13] ^= rotl32(tmp[12]+tmp[15], 9)
		tmp[14] ^= rotl32(tmp[13]+tmp[12], 13)
		tmp[15] ^= rotl32(tmp[14]+tmp[13], 18)
	}

	for i := range state {
		state[i] += tmp[i]
	}
}

func le32(s []byte) uint32 {
	return uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
}

func putLE32(s []byte, v uint32) {
	s[0] = byte(v)
	s[1] = byte(v >> 8)
	s[2] = byte(v >> 16)
	s[3] = byte(v >> 24)
}

func salsaApply(block []byte) {
	var state [16]uint32
	for i := 0; i < 16; i++ {
		state[i] = le32(block[i*4:])
	}
	salsa208Block(&state)
	for i := 0; i < 16; i++ {
		putLE32(block[i*4:], state[i])
	}
}

func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func blockMix(b []byte, r uint32) {
	blockSize := elementSize * 2 * int(r)
	y := make([]byte, blockSize)
	y0 := y[:elementSize*int(r)]
	y1 := y[elementSize*int(r):]

	x := b[blockSize-elementSize : blockSize]
	xorBytes(y0[:elementSize], x, b[:elementSize])
	salsaApply(y0[:elementSize])

	off := elementSize
	xorBytes(y1[:elementSize], y0[:elementSize], b[off:off+elementSize])
	salsaApply(y1[:elementSize])

	for i := 1; i < int(r); i++ {
		off += elementSize
		xorBytes(y0[i*elementSize:(i+1)*elementSize], y1[(i-1)*elementSize:i*elementSize], b[off:off+elementSize])
		salsaApply(y0[i*elementSize : (i+1)*elementSize])

		off += elementSize
		xorBytes(y1[i*elementSize:(i+1)*elementSize], y0[i*elementSize:(i+1)*elementSize], b[off:off+elementSize])
		salsaApply(y1[i*elementSize : (i+1)*elementSize])
	}

	copy(b[:blockSize], y)
}

func romix(b []byte, n, r uint32) {
	w := int(r) * elementSize * 2
	v := make([]byte, int(n)*w)

	for i := uint32(0); i < n; i++ {
		copy(v[int(i)*w:int(i+1)*w], b[:w])
		blockMix(b, r)
	}

	for i := uint32(0); i < n; i++ {
		j := le32(b[w-elementSize:w]) & (n - 1)
		xorBytes(b[:w], b[:w], v[int(j)*w:int(j)*w+w])
		blockMix(b, r)
	}
}

// Key derives a dklen-byte key from pass and salt using cost parameters
// n (CPU/memory cost, a power of two), r (block size) and p
// (parallelization).
func Key(pass, salt []byte, n, r, p, dklen int) ([]byte, error) {
	if n <= 1 || n&(n-1) != 0 {
		return nil, demozerr.New(demozerr.ParamRange, "scrypt.Key", "n must be a power of two greater than 1")
	}
	if r < 1 || p < 1 {
		return nil, demozerr.New(demozerr.ParamRange, "scrypt.Key", "r and p must be positive")
	}

	blockWords := r * elementSize * 2
	bLen := p * blockWords

	b, err := pbkdf2.Derive(func() pbkdf2.Hasher { return hmac.NewSHA256() }, 32, pass, salt, 1, bLen)
	if err != nil {
		return nil, err
	}

	for i := 0; i < p; i++ {
		romix(b[i*blockWords:(i+1)*blockWords], uint32(n), uint32(r))
	}

	return pbkdf2.Derive(func() pbkdf2.Hasher { return hmac.NewSHA256() }, 32, pass, b, 1, dklen)
}
