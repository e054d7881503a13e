package inflate

// Per RFC 1951 §3.2.5: length code 257..285 base lengths and extra-bit
// counts, and distance code 0..29 base distances and extra-bit counts.
var lengthBase = [29]uint16{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtra = [29]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

var distBase = [30]uint16{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distExtra = [30]uint8{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// codeLenOrder is the fixed transmission order of bit-length code lengths
// in a dynamic block header (RFC 1951 §3.2.7).
var codeLenOrder = [19]uint8{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

const (
	maxLCodes  = 286 // 256 literals + end-of-block + 29 length codes
	maxDCodes  = 30
	maxBLCodes = 19
	endBlock   = 256
)

var fixedLit, fixedDist huffman

func init() {
	var lengths [maxLCodes]uint8
	i := 0
	for ; i < 144; i++ {
		lengths[i] = 8
	}
	for ; i < 256; i++ {
		lengths[i] = 9
	}
	for ; i < 280; i++ {
		lengths[i] = 7
	}
	for ; i < maxLCodes; i++ {
		lengths[i] = 8
	}
	construct(&fixedLit, lengths[:])

	var dlengths [maxDCodes]uint8
	for i := range dlengths {
		dlengths[i] = 5
	}
	construct(&fixedDist, dlengths[:])
}
