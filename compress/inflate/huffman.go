package inflate

import "demozcrypt/internal/bitio"

// maxBits bounds every DEFLATE Huffman code length (RFC 1951 §3.2.2).
const maxBits = 15

// huffman mirrors the demoz inflate_sym_desc layout: a per-length count
// table plus a symbol table ordered by (length, then original symbol
// index), built once per code and consulted bit-by-bit during decode.
type huffman struct {
	count  [maxBits + 1]uint16
	symbol []uint16
}

// construct builds h from a code-length-per-symbol table (RFC 1951's
// canonical Huffman construction). It reports whether the code set is
// complete; an incomplete code is only legal for a one-symbol distance
// tree edge case the caller handles separately.
func construct(h *huffman, lengths []uint8) (complete bool) {
	for i := range h.count {
		h.count[i] = 0
	}
	for _, l := range lengths {
		h.count[l]++
	}
	if h.count[0] == uint16(len(lengths)) {
		return false
	}

	left := 1
	for l := 1; l <= maxBits; l++ {
		left <<= 1
		left -= int(h.count[l])
		if left < 0 {
			return false
		}
	}

	var offs [maxBits + 2]uint16
	for l := 1; l < maxBits; l++ {
		offs[l+1] = offs[l] + h.count[l]
	}

	if cap(h.symbol) < len(lengths) {
		h.symbol = make([]uint16, len(lengths))
	} else {
		h.symbol = h.symbol[:len(lengths)]
	}
	for sym, l := range lengths {
		if l != 0 {
			h.symbol[offs[l]] = uint16(sym)
			offs[l]++
		}
	}
	return left == 0
}

// cursor is a resumable bit-at-a-time Huffman decode in progress. Because
// the caller may call Inflate with input that runs dry mid-symbol, the
// partial (code, first, index) state persists across calls exactly as the
// demoz bits_get reader's own cursor does.
type cursor struct {
	active bool
	code   uint32
	first  uint32
	index  uint32
	length uint32 // bits consumed so far, i.e. current code length under trial
}

// step advances the decode by consuming bits from r (gated by ensure, which
// reports whether at least one more bit is available without blocking). It
// returns (symbol, true, nil) on success, (0, false, nil) if more input is
// needed (the cursor remains active for the next call), or an error if the
// code space is exhausted without a match.
func (c *cursor) step(r *bitio.Reader, h *huffman, ensure func(uint32) bool) (int32, bool, error) {
	if !c.active {
		c.code, c.first, c.index, c.length = 0, 0, 0, 0
		c.active = true
	}

	for c.length < maxBits {
		if !ensure(1) {
			return 0, false, nil
		}
		bit, _ := r.Get(1, false)
		c.code = (c.code << 1) | bit
		c.length++

		count := uint32(h.count[c.length])
		if c.code-c.first < count {
			sym := h.symbol[c.index+(c.code-c.first)]
			c.active = false
			return int32(sym), true, nil
		}
		c.index += count
		c.first += count
		c.first <<= 1
	}

	c.active = false
	return 0, false, errBadCode
}
