// Package aes implements the Advanced Encryption Standard (FIPS 197),
// ported from demoz lib/aes_fast.c's struct contract (lib/aes.h): a single
// flat key-expansion buffer sized for the largest variant, driven by a
// from-scratch Rijndael round function since no aes_fast.c source existed
// to port the actual SubBytes/MixColumns tables from — the S-box, its
// inverse, and the Rcon schedule below are the standard FIPS 197 tables.
package aes

import "demozcrypt/demozerr"

const (
	Type128 = 0
	Type192 = 1
	Type256 = 2

	BlockSize = 16

	keyLen128, rounds128 = 16, 10
	keyLen192, rounds192 = 24, 12
	keyLen256, rounds256 = 32, 14

	keyExpLen = BlockSize * (rounds256 + 1)
)

// Context holds an expanded AES key schedule. The layout mirrors demoz's
// aes_ctx: one flat key-expansion buffer sized for AES-256, plus the
// negotiated key length and round count.
type Context struct {
	keyexp [keyExpLen]byte
	keylen uint16
	rounds uint16
}

var sbox = [256]byte{
	0x63, 0x7c, 0x77, 0x7b, 0xf2, 0x6b, 0x6f, 0xc5, 0x30, 0x01, 0x67, 0x2b, 0xfe, 0xd7, 0xab, 0x76,
	0xca, 0x82, 0xc9, 0x7d, 0xfa, 0x59, 0x47, 0xf0, 0xad, 0xd4, 0xa2, 0xaf, 0x9c, 0xa4, 0x72, 0xc0,
	0xb7, 0xfd, 0x93, 0x26, 0x36, 0x3f, 0xf7, 0xcc, 0x34, 0xa5, 0xe5, 0xf1, 0x71, 0xd8, 0x31, 0x15,
	0x04, 0xc7, 0x23, 0xc3, 0x18, 0x96, 0x05, 0x9a, 0x07, 0x12, 0x80, 0xe2, 0xeb, 0x27, 0xb2, 0x75,
	0x09, 0x83, 0x2c, 0x1a, 0x1b, 0x6e, 0x5a, 0xa0, 0x52, 0x3b, 0xd6, 0xb3, 0x29, 0xe3, 0x2f, 0x84,
	0x53, 0xd1, 0x00, 0xed, 0x20, 0xfc, 0xb1, 0x5b, 0x6a, 0xcb, 0xbe, 0x39, 0x4a, 0x4c, 0x58, 0xcf,
	0xd0, 0xef, 0xaa, 0xfb, 0x43, 0x4d, 0x33, 0x85, 0x45, 0xf9, 0x02, 0x7f, 0x50, 0x3c, 0x9f, 0xa8,
	0x51, 0xa3, 0x40, 0x8f, 0x92, 0x9d, 0x38, 0xf5, 0xbc, 0xb6, 0xda, 0x21, 0x10, 0xff, 0xf3, 0xd2,
	0xcd, 0x0c, 0x13, 0xec, 0x5f, 0x97, 0x44, 0x17, 0xc4, 0xa7, 0x7e, 0x3d, 0x64, 0x5d, 0x19, 0x73,
	0x60, 0x81, 0x4f, 0xdc, 0x22, 0x2a, 0x90, 0x88, 0x46, 0xee, 0xb8, 0x14, 0xde, 0x5e, 0x0b, 0xdb,
	0xe0, 0x32, 0x3a, 0x0a, 0x49, 0x06, 0x24, 0x5c, 0xc2, 0xd3, 0xac, 0x62, 0x91, 0x95, 0xe4, 0x79,
	0xe7, 0xc8, 0x37, 0x6d, 0x8d, 0xd5, 0x4e, 0xa9, 0x6c, 0x56, 0xf4, 0xea, 0x65, 0x7a, 0xae, 0x08,
	0xba, 0x78, 0x25, 0x2e, 0x1c, 0xa6, 0xb4, 0xc6, 0xe8, 0xdd, 0x74, 0x1f, 0x4b, 0xbd, 0x8b, 0x8a,
	0x70, 0x3e, 0xb5, 0x66, 0x48, 0x03, 0xf6, 0x0e, 0x61, 0x35, 0x57, 0xb9, 0x86, 0xc1, 0x1d, 0x9e,
	0xe1, 0xf8, 0x98, 0x11, 0x69, 0xd9, 0x8e, 0x94, 0x9b, 0x1e, 0x87, 0xe9, 0xce, 0x55, 0x28, 0xdf,
	0x8c, 0xa1, 0x89, 0x0d, 0xbf, 0xe6, 0x42, 0x68, 0x41, 0x99, 0x2d, 0x0f, 0xb0, 0x54, 0xbb, 0x16,
}

var invSbox [256]byte

func init() {
	for i, v := range sbox {
		invSbox[v] = byte(i)
	}
}

var rcon = [11]byte{0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

func xtime(b byte) byte {
	if b&0x80 != 0 {
		return (b << 1) ^ 0x1b
	}
	return b << 1
}

func gmul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}

// Init expands key (16/24/32 bytes, selected by typ) into ctx's round-key
// schedule.
func (ctx *Context) Init(key []byte, typ int32) error {
	var nk, nr int
	switch typ {
	case Type128:
		nk, nr = keyLen128/4, rounds128
	case Type192:
		nk, nr = keyLen192/4, rounds192
	case Type256:
		nk, nr = keyLen256/4, rounds256
	default:
		return demozerr.New(demozerr.ParamRange, "aes.Init", "unknown aes type")
	}
	if len(key) != nk*4 {
		return demozerr.New(demozerr.ParamRange, "aes.Init", "key length mismatch for type")
	}

	ctx.keylen = uint16(nk * 4)
	ctx.rounds = uint16(nr)

	var w [60][4]byte
	for i := 0; i < nk; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}

	for i := nk; i < 4*(nr+1); i++ {
		temp := w[i-1]
		if i%nk == 0 {
			temp = [4]byte{temp[1], temp[2], temp[3], temp[0]}
			for j := range temp {
				temp[j] = sbox[temp[j]]
			}
			temp[0] ^= rcon[i/nk]
		} else if nk > 6 && i%nk == 4 {
			for j := range temp {
				temp[j] = sbox[temp[j]]
			}
		}
		for j := range w[i] {
			w[i][j] = w[i-nk][j] ^ temp[j]
		}
	}

	for i := 0; i < 4*(nr+1); i++ {
		copy(ctx.keyexp[4*i:4*i+4], w[i][:])
	}
	return nil
}

func addRoundKey(state *[16]byte, keyexp []byte) {
	for i := range state {
		state[i] ^= keyexp[i]
	}
}

func subBytes(state *[16]byte, box *[256]byte) {
	for i := range state {
		state[i] = box[state[i]]
	}
}

func shiftRows(state *[16]byte) {
	t := *state
	// column-major 4x4: state[row + 4*col]
	state[1] = t[5]
	state[5] = t[9]
	state[9] = t[13]
	state[13] = t[1]

	state[2] = t[10]
	state[6] = t[14]
	state[10] = t[2]
	state[14] = t[6]

	state[3] = t[15]
	state[7] = t[3]
	state[11] = t[7]
	state[15] = t[11]
}

func invShiftRows(state *[16]byte) {
	t := *state
	state[5] = t[1]
	state[9] = t[5]
	state[13] = t[9]
	state[1] = t[13]

	state[10] = t[2]
	state[14] = t[6]
	state[2] = t[10]
	state[6] = t[14]

	state[15] = t[3]
	state[3] = t[7]
	state[7] = t[11]
	state[11] = t[15]
}

func mixColumns(state *[16]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := state[4*c], state[4*c+1], state[4*c+2], state[4*c+3]
		state[4*c] = gmul(a0, 2) ^ gmul(a1, 3) ^ a2 ^ a3
		state[4*c+1] = a0 ^ gmul(a1, 2) ^ gmul(a2, 3) ^ a3
		state[4*c+2] = a0 ^ a1 ^ gmul(a2, 2) ^ gmul(a3, 3)
		state[4*c+3] = gmul(a0, 3) ^ a1 ^ a2 ^ gmul(a3, 2)
	}
}

func invMixColumns(state *[16]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := state[4*c], state[4*c+1], state[4*c+2], state[4*c+3]
		state[4*c] = gmul(a0, 14) ^ gmul(a1, 11) ^ gmul(a2, 13) ^ gmul(a3, 9)
		state[4*c+1] = gmul(a0, 9) ^ gmul(a1, 14) ^ gmul(a2, 11) ^ gmul(a3, 13)
		state[4*c+2] = gmul(a0, 13) ^ gmul(a1, 9) ^ gmul(a2, 14) ^ gmul(a3, 11)
		state[4*c+3] = gmul(a0, 11) ^ gmul(a1, 13) ^ gmul(a2, 9) ^ gmul(a3, 14)
	}
}

// BlockSize reports the cipher's block size in bytes, satisfying
// blockmode.Block.
func (ctx *Context) BlockSize() int { return BlockSize }

// Encrypt encrypts one 16-byte block in place.
func (ctx *Context) Encrypt(state []byte) {
	var s [16]byte
	copy(s[:], state)

	nr := int(ctx.rounds)
	addRoundKey(&s, ctx.keyexp[0:16])
	for round := 1; round < nr; round++ {
		subBytes(&s, &sbox)
		shiftRows(&s)
		mixColumns(&s)
		addRoundKey(&s, ctx.keyexp[16*round:16*round+16])
	}
	subBytes(&s, &sbox)
	shiftRows(&s)
	addRoundKey(&s, ctx.keyexp[16*nr:16*nr+16])

	copy(state, s[:])
}

// Decrypt decrypts one 16-byte block in place.
func (ctx *Context) Decrypt(state []byte) {
	var s [16]byte
	copy(s[:], state)

	nr := int(ctx.rounds)
	addRoundKey(&s, ctx.keyexp[16*nr:16*nr+16])
	for round := nr - 1; round > 0; round-- {
		invShiftRows(&s)
		subBytes(&s, &invSbox)
		addRoundKey(&s, ctx.keyexp[16*round:16*round+16])
		invMixColumns(&s)
	}
	invShiftRows(&s)
	subBytes(&s, &invSbox)
	addRoundKey(&s, ctx.keyexp[0:16])

	copy(state, s[:])
}
