// Package des implements the Data Encryption Standard (FIPS 46-3), ported
// from demoz lib/des.h's struct contract: a round-key schedule split into
// k (round subkeys), c and d (the rotating 28-bit key halves), since no
// des.c source existed in the retrieval pack to port the Feistel round
// from directly — the permutation/S-box tables below are the standard
// FIPS 46-3 ones.
package des

import "demozcrypt/demozerr"

const (
	KeyLen    = 8
	BlockSize = 8
)

// Context holds an expanded DES key schedule: one 48-bit round subkey per
// round (k), and the rotating 28-bit C/D halves that produced it.
type Context struct {
	k [17][8]byte
	c [17][4]byte
	d [17][4]byte
}

var ip = [64]int{
	58, 50, 42, 34, 26, 18, 10, 2,
	60, 52, 44, 36, 28, 20, 12, 4,
	62, 54, 46, 38, 30, 22, 14, 6,
	64, 56, 48, 40, 32, 24, 16, 8,
	57, 49, 41, 33, 25, 17, 9, 1,
	59, 51, 43, 35, 27, 19, 11, 3,
	61, 53, 45, 37, 29, 21, 13, 5,
	63, 55, 47, 39, 31, 23, 15, 7,
}

var fp = [64]int{
	40, 8, 48, 16, 56, 24, 64, 32,
	39, 7, 47, 15, 55, 23, 63, 31,
	38, 6, 46, 14, 54, 22, 62, 30,
	37, 5, 45, 13, 53, 21, 61, 29,
	36, 4, 44, 12, 52, 20, 60, 28,
	35, 3, 43, 11, 51, 19, 59, 27,
	34, 2, 42, 10, 50, 18, 58, 26,
	33, 1, 41, 9, 49, 17, 57, 25,
}

var pc1 = [56]int{
	57, 49, 41, 33, 25, 17, 9,
	1, 58, 50, 42, 34, 26, 18,
	10, 2, 59, 51, 43, 35, 27,
	19, 11, 3, 60, 52, 44, 36,
	63, 55, 47, 39, 31, 23, 15,
	7, 62, 54, 46, 38, 30, 22,
	14, 6, 61, 53, 45, 37, 29,
	21, 13, 5, 28, 20, 12, 4,
}

var pc2 = [48]int{
	14, 17, 11, 24, 1, 5,
	3, 28, 15, 6, 21, 10,
	23, 19, 12, 4, 26, 8,
	16, 7, 27, 20, 13, 2,
	41, 52, 31, 37, 47, 55,
	30, 40, 51, 45, 33, 48,
	44, 49, 39, 56, 34, 53,
	46, 42, 50, 36, 29, 32,
}

var shifts = [16]uint{1, 1, 2, 2, 2, 2, 2, 2, 1, 2, 2, 2, 2, 2, 2, 1}

var expandE = [48]int{
	32, 1, 2, 3, 4, 5,
	4, 5, 6, 7, 8, 9,
	8, 9, 10, 11, 12, 13,
	12, 13, 14, 15, 16, 17,
	16, 17, 18, 19, 20, 21,
	20, 21, 22, 23, 24, 25,
	24, 25, 26, 27, 28, 29,
	28, 29, 30, 31, 32, 1,
}

var perm = [32]int{
	16, 7, 20, 21,
	29, 12, 28, 17,
	1, 15, 23, 26,
	5, 18, 31, 10,
	2, 8, 24, 14,
	32, 27, 3, 9,
	19, 13, 30, 6,
	22, 11, 4, 25,
}

var sbox = [8][4][16]byte{
	{
		{14, 4, 13, 1, 2, 15, 11, 8, 3, 10, 6, 12, 5, 9, 0, 7},
		{0, 15, 7, 4, 14, 2, 13, 1, 10, 6, 12, 11, 9, 5, 3, 8},
		{4, 1, 14, 8, 13, 6, 2, 11, 15, 12, 9, 7, 3, 10, 5, 0},
		{15, 12, 8, 2, 4, 9, 1, 7, 5, 11, 3, 14, 10, 0, 6, 13},
	},
	{
		{15, 1, 8, 14, 6, 11, 3, 4, 9, 7, 2, 13, 12, 0, 5, 10},
		{3, 13, 4, 7, 15, 2, 8, 14, 12, 0, 1, 10, 6, 9, 11, 5},
		{0, 14, 7, 11, 10, 4, 13, 1, 5, 8, 12, 6, 9, 3, 2, 15},
		{13, 8, 10, 1, 3, 15, 4, 2, 11, 6, 7, 12, 0, 5, 14, 9},
	},
	{
		{10, 0, 9, 14, 6, 3, 15, 5, 1, 13, 12, 7, 11, 4, 2, 8},
		{13, 7, 0, 9, 3, 4, 6, 10, 2, 8, 5, 14, 12, 11, 15, 1},
		{13, 6, 4, 9, 8, 15, 3, 0, 11, 1, 2, 12, 5, 10, 14, 7},
		{1, 10, 13, 0, 6, 9, 8, 7, 4, 15, 14, 3, 11, 5, 2, 12},
	},
	{
		{7, 13, 14, 3, 0, 6, 9, 10, 1, 2, 8, 5, 11, 12, 4, 15},
		{13, 8, 11, 5, 6, 15, 0, 3, 4, 7, 2, 12, 1, 10, 14, 9},
		{10, 6, 9, 0, 12, 11, 7, 13, 15, 1, 3, 14, 5, 2, 8, 4},
		{3, 15, 0, 6, 10, 1, 13, 8, 9, 4, 5, 11, 12, 7, 2, 14},
	},
	{
		{2, 12, 4, 1, 7, 10, 11, 6, 8, 5, 3, 15, 13, 0, 14, 9},
		{14, 11, 2, 12, 4, 7, 13, 1, 5, 0, 15, 10, 3, 9, 8, 6},
		{4, 2, 1, 11, 10, 13, 7, 8, 15, 9, 12, 5, 6, 3, 0, 14},
		{11, 8, 12, 7, 1, 14, 2, 13, 6, 15, 0, 9, 10, 4, 5, 3},
	},
	{
		{12, 1, 10, 15, 9, 2, 6, 8, 0, 13, 3, 4, 14, 7, 5, 11},
		{10, 15, 4, 2, 7, 12, 9, 5, 6, 1, 13, 14, 0, 11, 3, 8},
		{9, 14, 15, 5, 2, 8, 12, 3, 7, 0, 4, 10, 1, 13, 11, 6},
		{4, 3, 2, 12, 9, 5, 15, 10, 11, 14, 1, 7, 6, 0, 8, 13},
	},
	{
		{4, 11, 2, 14, 15, 0, 8, 13, 3, 12, 9, 7, 5, 10, 6, 1},
		{13, 0, 11, 7, 4, 9, 1, 10, 14, 3, 5, 12, 2, 15, 8, 6},
		{1, 4, 11, 13, 12, 3, 7, 14, 10, 15, 6, 8, 0, 5, 9, 2},
		{6, 11, 13, 8, 1, 4, 10, 7, 9, 5, 0, 15, 14, 2, 3, 12},
	},
	{
		{13, 2, 8, 4, 6, 15, 11, 1, 10, 9, 3, 14, 5, 0, 12, 7},
		{1, 15, 13, 8, 10, 3, 7, 4, 12, 5, 6, 11, 0, 14, 9, 2},
		{7, 11, 4, 1, 9, 12, 14, 2, 0, 6, 10, 13, 15, 3, 5, 8},
		{2, 1, 14, 7, 4, 10, 8, 13, 15, 12, 9, 0, 3, 5, 6, 11},
	},
}

func bytesToBits(buf []byte, n int) []byte {
	bits := make([]byte, n)
	for i := 0; i < n; i++ {
		bits[i] = (buf[i/8] >> uint(7-i%8)) & 1
	}
	return bits
}

func bitsToBytes(bits []byte) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b != 0 {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

func permuteBits(bits []byte, table []int) []byte {
	out := make([]byte, len(table))
	for i, p := range table {
		out[i] = bits[p-1]
	}
	return out
}

func leftRotate(bits []byte, n uint) []byte {
	l := len(bits)
	out := make([]byte, l)
	for i := 0; i < l; i++ {
		out[i] = bits[(i+int(n))%l]
	}
	return out
}

// Init expands an 8-byte DES key into ctx's 16-round subkey schedule.
func (ctx *Context) Init(key []byte) error {
	if len(key) != KeyLen {
		return demozerr.New(demozerr.ParamRange, "des.Init", "key must be 8 bytes")
	}

	keyBits := bytesToBits(key, 64)
	permuted := permuteBits(keyBits, pc1[:])
	c := permuted[0:28]
	d := permuted[28:56]

	copy(ctx.c[0][:], bitsToBytes(c))
	copy(ctx.d[0][:], bitsToBytes(d))

	for round := 1; round <= 16; round++ {
		c = leftRotate(c, shifts[round-1])
		d = leftRotate(d, shifts[round-1])
		copy(ctx.c[round][:], bitsToBytes(c))
		copy(ctx.d[round][:], bitsToBytes(d))

		cd := append(append([]byte{}, c...), d...)
		sub := permuteBits(cd, pc2[:])
		copy(ctx.k[round][:], bitsToBytes(sub))
	}

	return nil
}

func (ctx *Context) roundKeyBits(round int) []byte {
	return bytesToBits(ctx.k[round][:], 48)
}

func sboxSubstitute(expanded []byte) []byte {
	out := make([]byte, 32)
	for i := 0; i < 8; i++ {
		block := expanded[i*6 : i*6+6]
		row := block[0]<<1 | block[5]
		col := block[1]<<3 | block[2]<<2 | block[3]<<1 | block[4]
		val := sbox[i][row][col]
		for j := 0; j < 4; j++ {
			out[i*4+j] = (val >> uint(3-j)) & 1
		}
	}
	return out
}

func (ctx *Context) crypt(block []byte, decrypt bool) {
	bits := bytesToBits(block, 64)
	bits = permuteBits(bits, ip[:])

	l := append([]byte{}, bits[0:32]...)
	r := append([]byte{}, bits[32:64]...)

	rounds := make([]int, 16)
	for i := range rounds {
		if decrypt {
			rounds[i] = 16 - i
		} else {
			rounds[i] = i + 1
		}
	}

	for _, round := range rounds {
		expanded := permuteBits(r, expandE[:])
		key := ctx.roundKeyBits(round)
		for i := range expanded {
			expanded[i] ^= key[i]
		}

		sub := sboxSubstitute(expanded)
		f := permuteBits(sub, perm[:])

		newR := make([]byte, 32)
		for i := range newR {
			newR[i] = l[i] ^ f[i]
		}
		l = r
		r = newR
	}

	combined := append(append([]byte{}, r...), l...)
	out := permuteBits(combined, fp[:])
	copy(block, bitsToBytes(out))
}

// BlockSize reports the cipher's block size in bytes, satisfying
// blockmode.Block.
func (ctx *Context) BlockSize() int { return BlockSize }

// Crypto encrypts or decrypts one 8-byte block in place.
func (ctx *Context) Crypto(block []byte, decrypt bool) error {
	if len(block) != BlockSize {
		return demozerr.New(demozerr.ParamRange, "des.Crypto", "block must be 8 bytes")
	}
	ctx.crypt(block, decrypt)
	return nil
}

// Encrypt encrypts one 8-byte block in place, satisfying blockmode.Block.
func (ctx *Context) Encrypt(block []byte) { ctx.crypt(block, false) }

// Decrypt decrypts one 8-byte block in place, satisfying blockmode.Block.
func (ctx *Context) Decrypt(block []byte) { ctx.crypt(block, true) }
