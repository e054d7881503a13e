package hmac

import (
	"demozcrypt/hash/blake2b"
	"demozcrypt/hash/blake2s"
	"demozcrypt/hash/md5"
	"demozcrypt/hash/sha1"
	"demozcrypt/hash/sha2"
	"demozcrypt/hash/sha3"
)

// md5Hasher adapts hash/md5's explicit-total Finish to the Hasher
// contract by tracking the running length itself.
type md5Hasher struct {
	ctx   md5.Context
	total uint64
}

func newMD5Hasher() Hasher {
	h := &md5Hasher{}
	h.ctx.Init()
	return h
}

func (h *md5Hasher) Process(p []byte) { h.ctx.Process(p); h.total += uint64(len(p)) }
func (h *md5Hasher) Finish()          { h.ctx.Finish(h.total) }
func (h *md5Hasher) Sum() []byte      { s := h.ctx.Sum(); return s[:] }
func (h *md5Hasher) BlockSize() int   { return md5.BlockSize }

// NewMD5 returns an HMAC-MD5 Hasher factory.
func NewMD5() Hasher { return newMD5Hasher() }

type sha1Hasher struct {
	ctx   sha1.Context
	total uint64
}

func newSHA1Hasher() Hasher {
	h := &sha1Hasher{}
	h.ctx.Init()
	return h
}

func (h *sha1Hasher) Process(p []byte) { h.ctx.Process(p); h.total += uint64(len(p)) }
func (h *sha1Hasher) Finish()          { h.ctx.Finish(h.total) }
func (h *sha1Hasher) Sum() []byte      { s := h.ctx.Sum(); return s[:] }
func (h *sha1Hasher) BlockSize() int   { return sha1.BlockSize }

// NewSHA1 returns an HMAC-SHA1 Hasher factory.
func NewSHA1() Hasher { return newSHA1Hasher() }

type sha256Hasher struct {
	ctx   sha2.Context256
	total uint64
	is224 bool
}

func newSHA256Hasher() Hasher {
	h := &sha256Hasher{}
	h.ctx.Init()
	return h
}

func newSHA224Hasher() Hasher {
	h := &sha256Hasher{is224: true}
	h.ctx.Init224()
	return h
}

func (h *sha256Hasher) Process(p []byte) { h.ctx.Process(p); h.total += uint64(len(p)) }
func (h *sha256Hasher) Finish()          { h.ctx.Finish(h.total) }
func (h *sha256Hasher) Sum() []byte {
	if h.is224 {
		s := h.ctx.Sum224()
		return s[:]
	}
	s := h.ctx.Sum()
	return s[:]
}
func (h *sha256Hasher) BlockSize() int { return sha2.BlockSize256 }

// NewSHA256 returns an HMAC-SHA256 Hasher factory.
func NewSHA256() Hasher { return newSHA256Hasher() }

// NewSHA224 returns an HMAC-SHA224 Hasher factory.
func NewSHA224() Hasher { return newSHA224Hasher() }

type sha512Hasher struct {
	ctx   sha2.Context512
	total uint64
	is384 bool
}

func newSHA512Hasher() Hasher {
	h := &sha512Hasher{}
	h.ctx.Init()
	return h
}

func newSHA384Hasher() Hasher {
	h := &sha512Hasher{is384: true}
	h.ctx.Init384()
	return h
}

func (h *sha512Hasher) Process(p []byte) { h.ctx.Process(p); h.total += uint64(len(p)) }
func (h *sha512Hasher) Finish()          { h.ctx.Finish(h.total) }
func (h *sha512Hasher) Sum() []byte {
	if h.is384 {
		s := h.ctx.Sum384()
		return s[:]
	}
	s := h.ctx.Sum()
	return s[:]
}
func (h *sha512Hasher) BlockSize() int { return sha2.BlockSize512 }

// NewSHA512 returns an HMAC-SHA512 Hasher factory.
func NewSHA512() Hasher { return newSHA512Hasher() }

// NewSHA384 returns an HMAC-SHA384 Hasher factory.
func NewSHA384() Hasher { return newSHA384Hasher() }

type blake2bHasher struct {
	ctx blake2b.Context
}

func newBLAKE2bHasher() Hasher {
	h := &blake2bHasher{}
	h.ctx.Init(blake2b.MaxSize)
	return h
}

func (h *blake2bHasher) Process(p []byte) { h.ctx.Process(p) }
func (h *blake2bHasher) Finish()          { h.ctx.Finish() }
func (h *blake2bHasher) Sum() []byte      { return h.ctx.Sum() }
func (h *blake2bHasher) BlockSize() int   { return blake2b.BlockSize }

// NewBLAKE2b returns an HMAC-BLAKE2b Hasher factory.
func NewBLAKE2b() Hasher { return newBLAKE2bHasher() }

type blake2sHasher struct {
	ctx blake2s.Context
}

func newBLAKE2sHasher() Hasher {
	h := &blake2sHasher{}
	h.ctx.Init(blake2s.MaxSize)
	return h
}

func (h *blake2sHasher) Process(p []byte) { h.ctx.Process(p) }
func (h *blake2sHasher) Finish()          { h.ctx.Finish() }
func (h *blake2sHasher) Sum() []byte      { return h.ctx.Sum() }
func (h *blake2sHasher) BlockSize() int   { return blake2s.BlockSize }

// NewBLAKE2s returns an HMAC-BLAKE2s Hasher factory.
func NewBLAKE2s() Hasher { return newBLAKE2sHasher() }

// sha3Hasher adapts hash/sha3's Context to the Hasher contract, reporting
// the variant's sponge rate as its block size (the rate, not the capacity,
// is the portion of the state XORed with input per absorb).
type sha3Hasher struct {
	ctx  sha3.Context
	rate int
}

func newSHA3Hasher(typ sha3.Type, dsize uint32, rate int) Hasher {
	h := &sha3Hasher{rate: rate}
	h.ctx.Init(typ, dsize)
	return h
}

func (h *sha3Hasher) Process(p []byte) { h.ctx.Process(p) }
func (h *sha3Hasher) Finish()          { h.ctx.Finish() }
func (h *sha3Hasher) Sum() []byte      { return h.ctx.Sum() }
func (h *sha3Hasher) BlockSize() int   { return h.rate }

// NewSHA3_224 returns an HMAC-SHA3-224 Hasher factory.
func NewSHA3_224() Hasher { return newSHA3Hasher(sha3.Type224, 28, 144) }

// NewSHA3_256 returns an HMAC-SHA3-256 Hasher factory.
func NewSHA3_256() Hasher { return newSHA3Hasher(sha3.Type256, 32, 136) }

// NewSHA3_384 returns an HMAC-SHA3-384 Hasher factory.
func NewSHA3_384() Hasher { return newSHA3Hasher(sha3.Type384, 48, 104) }

// NewSHA3_512 returns an HMAC-SHA3-512 Hasher factory.
func NewSHA3_512() Hasher { return newSHA3Hasher(sha3.Type512, 64, 72) }
