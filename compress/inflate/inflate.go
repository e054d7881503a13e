// Package inflate implements a streaming RFC 1951 DEFLATE decompressor,
// ported from the demoz lib/inflate.c state machine described in
// include/demoz/lib/inflate.h: a bit-stream reader feeding a state machine
// that emits decoded bytes into a 64 KiB sliding window doubling as the
// output buffer. Emitted slices are views into that window and are only
// valid until the next Inflate call, because a later call may wrap the
// window and overwrite them — callers must copy what they need before
// calling again.
package inflate

import (
	"demozcrypt/demozerr"
	"demozcrypt/internal/bitio"
)

const (
	windowSize  = 1 << 16
	winMask     = windowSize - 1
	maxMatchLen = 258
)

// block-grammar states, one per production in RFC 1951 §3.2.
const (
	stBlockHeader = iota
	stStoredHeader
	stStoredCopy
	stDynHeader
	stDynBLLens
	stDynLens
	stDecodeLen
	stLenExtra
	stDecodeDist
	stDistExtra
	stEnd
)

var (
	errIncomplete      = demozerr.New(demozerr.Malformed, "inflate", "incomplete stream")
	errBadLCodes       = demozerr.New(demozerr.Malformed, "inflate", "bad literal/length tree")
	errBadDCodes       = demozerr.New(demozerr.Malformed, "inflate", "bad distance tree")
	errBadStoredHeader = demozerr.New(demozerr.Malformed, "inflate", "bad stored block header")
	errBadDynHeader    = demozerr.New(demozerr.Malformed, "inflate", "bad dynamic block header")
	errBadBLCodes      = demozerr.New(demozerr.Malformed, "inflate", "bad bit-length tree")
	errBadLDecode      = demozerr.New(demozerr.Malformed, "inflate", "bad literal/length decode")
	errBadDDecode      = demozerr.New(demozerr.Malformed, "inflate", "bad distance decode")
	errBadCode         = demozerr.New(demozerr.Malformed, "inflate", "huffman code not found")
)

// Context is the caller-owned decompression state: the 64 KiB window, the
// bit reader, and the grammar cursor. It is not safe for concurrent use.
type Context struct {
	window   [windowSize]byte
	wpos     uint32
	outStart uint32

	bits bitio.Reader

	state int
	final bool

	storedRemaining uint32

	hlit, hdist, hclen uint32
	blLengths          [maxBLCodes]uint8
	blIdx              uint32
	blTree             huffman
	blCursor           cursor

	combinedLengths [maxLCodes + maxDCodes]uint8
	combinedIdx     uint32
	combinedTotal   uint32
	prevLen         uint8
	repeatSym       int32

	litTree, distTree      huffman
	litCursor, distCursor  cursor

	lenBase, lenExtraBits, lenValue     uint32
	distBaseVal, distExtraBits, distVal uint32

	done bool
	err  error
}

// New returns a Context ready to decode a fresh DEFLATE stream.
func New() *Context {
	c := &Context{}
	c.Reset()
	return c
}

// Reset returns ctx to its initial state, ready for a new stream.
func (c *Context) Reset() {
	*c = Context{state: stBlockHeader}
}

func (c *Context) writeByte(b byte) {
	c.window[c.wpos&winMask] = b
	c.wpos++
}

func (c *Context) copyMatch(length, dist uint32) {
	for i := uint32(0); i < length; i++ {
		c.writeByte(c.window[(c.wpos-dist)&winMask])
	}
}

// shouldFlush reports whether writing one more maximum-length match could
// cross the window's physical wrap boundary before the caller has seen the
// bytes written since the last emission.
func (c *Context) shouldFlush() bool {
	room := uint32(windowSize) - (c.outStart & winMask)
	return (c.wpos-c.outStart)+maxMatchLen > room
}

func (c *Context) takeEmission() []byte {
	start := c.outStart & winMask
	n := c.wpos - c.outStart
	c.outStart = c.wpos
	if n == 0 {
		return nil
	}
	return c.window[start : start+n]
}

func (c *Context) fail(err error) ([]byte, bool, error) {
	c.err = err
	return nil, false, err
}

func (c *Context) stall(flush bool) ([]byte, bool, error) {
	if flush {
		return c.fail(errIncomplete)
	}
	return nil, false, nil
}

func (c *Context) afterBlock() int {
	if c.final {
		return stEnd
	}
	return stBlockHeader
}

// Inflate consumes as much of src as the bit reader's staging area and the
// state machine can absorb in one call, advancing state and writing
// decoded bytes into the window. It returns:
//
//   - a non-nil, non-empty slice: an emission the caller must consume
//     (copy out) before the next call;
//   - (nil, true, nil): the stream is complete and fully flushed;
//   - (nil, false, nil): no emission yet, feed more input;
//   - (nil, false, err): the stream is malformed (Context is now unusable).
//
// flush signals that src is the last input that will ever be supplied;
// any state still pending input is then reported as errIncomplete instead
// of silently waiting.
func (c *Context) Inflate(src []byte, flush bool) ([]byte, bool, error) {
	if c.err != nil {
		return nil, false, c.err
	}
	if c.done {
		return nil, true, nil
	}

	srcPos := 0
	ensure := func(n uint32) bool {
		for c.bits.AvailBits() < n {
			if srcPos >= len(src) {
				return false
			}
			used := c.bits.Fill(src[srcPos:])
			srcPos += int(used)
			if used == 0 {
				return false
			}
		}
		return true
	}

	for {
		if c.shouldFlush() {
			return c.takeEmission(), false, nil
		}

		switch c.state {
		case stBlockHeader:
			if !ensure(3) {
				return c.stall(flush)
			}
			bfinal, _ := c.bits.Get(1, false)
			btype, _ := c.bits.Get(2, false)
			c.final = bfinal == 1
			switch btype {
			case 0:
				c.state = stStoredHeader
			case 1:
				c.litTree, c.distTree = fixedLit, fixedDist
				c.state = stDecodeLen
			case 2:
				c.state = stDynHeader
			default:
				return c.fail(errBadDynHeader)
			}

		case stStoredHeader:
			c.bits.AlignByte()
			if !ensure(32) {
				return c.stall(flush)
			}
			length, _ := c.bits.Get(16, false)
			nlength, _ := c.bits.Get(16, false)
			if length != (^nlength)&0xFFFF {
				return c.fail(errBadStoredHeader)
			}
			c.storedRemaining = length
			c.state = stStoredCopy

		case stStoredCopy:
			for c.storedRemaining > 0 {
				if c.shouldFlush() {
					return c.takeEmission(), false, nil
				}
				if !ensure(8) {
					return c.stall(flush)
				}
				b, _ := c.bits.Get(8, false)
				c.writeByte(byte(b))
				c.storedRemaining--
			}
			c.state = c.afterBlock()

		case stDynHeader:
			if !ensure(14) {
				return c.stall(flush)
			}
			hlit, _ := c.bits.Get(5, false)
			hdist, _ := c.bits.Get(5, false)
			hclen, _ := c.bits.Get(4, false)
			c.hlit = hlit + 257
			c.hdist = hdist + 1
			c.hclen = hclen + 4
			if c.hlit > maxLCodes || c.hdist > maxDCodes {
				return c.fail(errBadDynHeader)
			}
			c.blIdx = 0
			for i := range c.blLengths {
				c.blLengths[i] = 0
			}
			c.state = stDynBLLens

		case stDynBLLens:
			for c.blIdx < c.hclen {
				if !ensure(3) {
					return c.stall(flush)
				}
				v, _ := c.bits.Get(3, false)
				c.blLengths[codeLenOrder[c.blIdx]] = uint8(v)
				c.blIdx++
			}
			if !construct(&c.blTree, c.blLengths[:]) {
				return c.fail(errBadBLCodes)
			}
			c.combinedTotal = c.hlit + c.hdist
			c.combinedIdx = 0
			c.repeatSym = -1
			c.blCursor = cursor{}
			c.state = stDynLens

		case stDynLens:
			for c.combinedIdx < c.combinedTotal {
				if c.repeatSym < 0 {
					sym, ok, err := c.blCursor.step(&c.bits, &c.blTree, ensure)
					if err != nil {
						return c.fail(errBadBLCodes)
					}
					if !ok {
						return c.stall(flush)
					}
					if sym < 16 {
						c.combinedLengths[c.combinedIdx] = uint8(sym)
						c.prevLen = uint8(sym)
						c.combinedIdx++
						continue
					}
					c.repeatSym = sym
				}

				var extra, base uint32
				var fill uint8
				switch c.repeatSym {
				case 16:
					extra, base, fill = 2, 3, c.prevLen
				case 17:
					extra, base, fill = 3, 3, 0
				case 18:
					extra, base, fill = 7, 11, 0
				default:
					return c.fail(errBadBLCodes)
				}
				if !ensure(extra) {
					return c.stall(flush)
				}
				n, _ := c.bits.Get(extra, false)
				count := base + n
				if c.combinedIdx+count > c.combinedTotal {
					return c.fail(errBadBLCodes)
				}
				for i := uint32(0); i < count; i++ {
					c.combinedLengths[c.combinedIdx] = fill
					c.combinedIdx++
				}
				c.repeatSym = -1
			}

			if !construct(&c.litTree, c.combinedLengths[:c.hlit]) {
				return c.fail(errBadLCodes)
			}
			distLens := c.combinedLengths[c.hlit : c.hlit+c.hdist]
			if !(c.hdist == 1 && distLens[0] == 0) {
				if !construct(&c.distTree, distLens) &&
					!(c.distTree.count[1] == 1 && int(c.distTree.count[0]) == len(distLens)-1) {
					return c.fail(errBadDCodes)
				}
			}
			c.litCursor, c.distCursor = cursor{}, cursor{}
			c.state = stDecodeLen

		case stDecodeLen:
			sym, ok, err := c.litCursor.step(&c.bits, &c.litTree, ensure)
			if err != nil {
				return c.fail(errBadLDecode)
			}
			if !ok {
				return c.stall(flush)
			}
			switch {
			case sym < endBlock:
				c.writeByte(byte(sym))
			case sym == endBlock:
				c.state = c.afterBlock()
			default:
				idx := uint32(sym) - (endBlock + 1)
				if idx >= uint32(len(lengthBase)) {
					return c.fail(errBadLDecode)
				}
				c.lenBase = uint32(lengthBase[idx])
				c.lenExtraBits = uint32(lengthExtra[idx])
				c.state = stLenExtra
			}

		case stLenExtra:
			if !ensure(c.lenExtraBits) {
				return c.stall(flush)
			}
			extra, _ := c.bits.Get(c.lenExtraBits, false)
			c.lenValue = c.lenBase + extra
			c.state = stDecodeDist

		case stDecodeDist:
			sym, ok, err := c.distCursor.step(&c.bits, &c.distTree, ensure)
			if err != nil {
				return c.fail(errBadDDecode)
			}
			if !ok {
				return c.stall(flush)
			}
			if uint32(sym) >= uint32(len(distBase)) {
				return c.fail(errBadDDecode)
			}
			c.distBaseVal = uint32(distBase[sym])
			c.distExtraBits = uint32(distExtra[sym])
			c.state = stDistExtra

		case stDistExtra:
			if !ensure(c.distExtraBits) {
				return c.stall(flush)
			}
			extra, _ := c.bits.Get(c.distExtraBits, false)
			dist := c.distBaseVal + extra
			if dist == 0 || dist > c.wpos {
				return c.fail(errBadDDecode)
			}
			c.copyMatch(c.lenValue, dist)
			c.state = stDecodeLen

		case stEnd:
			if c.wpos != c.outStart {
				return c.takeEmission(), false, nil
			}
			c.done = true
			return nil, true, nil
		}
	}
}
