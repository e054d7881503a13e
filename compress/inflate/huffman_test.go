package inflate

import (
	"testing"

	"demozcrypt/internal/bitio"
)

// bitsReader packs MSB-first code bits into a bitio.Reader the same way
// DEFLATE's bitstream carries Huffman codes: each bit becomes the next
// LSB-first bit read off the byte stream, so reading them back in order
// reproduces the same bit sequence a cursor.step call consumes.
func bitsReader(bits []uint32) bitio.Reader {
	var w bitio.Writer
	for _, b := range bits {
		w.Add(b, 1)
	}
	w.Skip()
	var r bitio.Reader
	r.Fill(w.Bytes())
	return r
}

func TestConstructFixedTablesComplete(t *testing.T) {
	// The RFC 1951 fixed literal/length code spans 288 symbols (286 and
	// 287 never occur in data but are part of the code), and over all 288
	// it is a complete code.
	var h huffman
	lengths := make([]uint8, 288)
	for i := 0; i < 144; i++ {
		lengths[i] = 8
	}
	for i := 144; i < 256; i++ {
		lengths[i] = 9
	}
	for i := 256; i < 280; i++ {
		lengths[i] = 7
	}
	for i := 280; i < 288; i++ {
		lengths[i] = 8
	}
	if ok := construct(&h, lengths); !ok {
		t.Fatal("fixed literal/length table reported incomplete")
	}
}

func TestConstructRejectsOversubscribed(t *testing.T) {
	var h huffman
	// four symbols all at length 1: only two 1-bit codes exist.
	lengths := []uint8{1, 1, 1, 1}
	if ok := construct(&h, lengths); ok {
		t.Fatal("oversubscribed code set reported complete")
	}
}

func TestConstructSingleSymbolIncomplete(t *testing.T) {
	var h huffman
	// RFC 1951 allows a one-symbol incomplete distance code.
	lengths := []uint8{1}
	if ok := construct(&h, lengths); ok {
		t.Fatal("single-symbol code reported complete, want incomplete")
	}
}

func TestCursorStepDecodesKnownCode(t *testing.T) {
	// Canonical example from RFC 1951 §3.2.2: lengths 3,3,3,3,3,2,4,4 for
	// symbols A..H yield codes A=010 B=011 C=100 D=101 E=110 F=00 G=1110
	// H=1111.
	var h huffman
	lengths := []uint8{3, 3, 3, 3, 3, 2, 4, 4}
	if ok := construct(&h, lengths); !ok {
		t.Fatal("canonical example reported incomplete")
	}

	cases := []struct {
		bits []uint32 // MSB-first code bits
		want int32
	}{
		{[]uint32{0, 1, 0}, 0}, // A
		{[]uint32{0, 0}, 5},    // F
		{[]uint32{1, 1, 1, 0}, 6}, // G
		{[]uint32{1, 1, 1, 1}, 7}, // H
	}

	for _, tc := range cases {
		var c cursor
		var idx int
		r := bitsReader(tc.bits)
		for {
			sym, ok, err := c.step(&r, &h, func(n uint32) bool {
				_ = n
				return idx < len(tc.bits)
			})
			if err != nil {
				t.Fatalf("decode %v: %v", tc.bits, err)
			}
			if ok {
				if sym != tc.want {
					t.Fatalf("decode %v = %d, want %d", tc.bits, sym, tc.want)
				}
				break
			}
			idx++
		}
	}
}
