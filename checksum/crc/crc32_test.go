package crc

import "testing"

func TestSum32DefaultIEEE(t *testing.T) {
	// well-known CRC-32/IEEE (gzip) vector.
	got, ok := Sum32([]byte("hello"), CRC32DefaultLSB)
	if !ok {
		t.Fatal("Sum32 reported unknown variant")
	}
	if got != 0x3610a686 {
		t.Fatalf("Sum32(hello) = %#x, want 0x3610a686", got)
	}
}

func TestSum32Castagnoli(t *testing.T) {
	// CRC-32C of "123456789" is the well-known check value 0xe3069283.
	got, ok := Sum32([]byte("123456789"), CRC32CastagnoliLSB)
	if !ok {
		t.Fatal("Sum32 reported unknown variant")
	}
	if got != 0xe3069283 {
		t.Fatalf("Sum32(123456789, Castagnoli) = %#x, want 0xe3069283", got)
	}
}

func TestSum32UnknownVariant(t *testing.T) {
	if _, ok := Sum32([]byte("x"), 99); ok {
		t.Fatal("Sum32 accepted an unknown variant")
	}
}

func TestTable32RoundTripsWithLSB32(t *testing.T) {
	tbl, ok := Table32(CRC32DefaultLSB)
	if !ok {
		t.Fatal("Table32 reported unknown variant")
	}
	got := ^LSB32(tbl, 0xffffffff, []byte("hello"))
	want, _ := Sum32([]byte("hello"), CRC32DefaultLSB)
	if got != want {
		t.Fatalf("manual LSB32 compose = %#x, want %#x", got, want)
	}
}
