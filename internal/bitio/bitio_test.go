package bitio

import "testing"

func TestWriterReaderRoundTrip(t *testing.T) {
	var w Writer
	w.Add(0x05, 3) // 101
	w.Add(0x01, 1) // 1
	w.Skip()
	if len(w.Bytes()) != 1 {
		t.Fatalf("expected 1 staged byte, got %d", len(w.Bytes()))
	}

	var r Reader
	r.Fill(w.Bytes())
	v, need := r.Get(3, false)
	if need != 0 || v != 0x05 {
		t.Fatalf("Get(3) = %d, need %d, want 5, need 0", v, need)
	}
	v, need = r.Get(1, false)
	if need != 0 || v != 0x01 {
		t.Fatalf("Get(1) = %d, need %d, want 1, need 0", v, need)
	}
}

func TestReaderGetDrainsBuffer(t *testing.T) {
	var r Reader
	v, need := r.Get(1, false)
	if need != -1 || v != 0 {
		t.Fatalf("Get on empty reader = %d, need %d, want 0, need -1", v, need)
	}
}

func TestAvailBits(t *testing.T) {
	var r Reader
	r.Fill([]byte{0xff, 0xff})
	if got := r.AvailBits(); got != 16 {
		t.Fatalf("AvailBits = %d, want 16", got)
	}
	r.Get(3, false)
	if got := r.AvailBits(); got != 13 {
		t.Fatalf("AvailBits after Get(3) = %d, want 13", got)
	}
}

func TestAlignByte(t *testing.T) {
	var r Reader
	r.Fill([]byte{0xff, 0x00})
	r.Get(3, false)
	r.AlignByte()
	if r.cur != 0 || r.pos != 1 {
		t.Fatalf("AlignByte left cur=%d pos=%d, want cur=0 pos=1", r.cur, r.pos)
	}
	v, _ := r.Get(8, false)
	if v != 0x00 {
		t.Fatalf("byte after align = %#x, want 0x00", v)
	}
}

func TestFillCompactsTail(t *testing.T) {
	var r Reader
	big := make([]byte, getBufSize)
	for i := range big {
		big[i] = byte(i)
	}
	r.Fill(big)
	for i := 0; i < getBufSize-1; i++ {
		r.Get(8, false)
	}
	// one byte remains staged; Fill should compact it to the front and
	// accept more input instead of reporting zero room.
	n := r.Fill([]byte{0xAA, 0xBB})
	if n == 0 {
		t.Fatal("Fill reported no room after compaction")
	}
}
