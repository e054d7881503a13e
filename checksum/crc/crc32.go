package crc

// CRC-32 variant types, matching lib/crc.h.
const (
	CRC32DefaultMSB     = 0
	CRC32DefaultLSB     = 1
	CRC32CastagnoliMSB  = 2
	CRC32CastagnoliLSB  = 3
	CRC32KoopmanMSB     = 4
	CRC32KoopmanLSB     = 5
	CRC32QMSB           = 6
	CRC32QLSB           = 7
	CRC32CksumMSB       = 8
)

const crc32TableSize = 256

const (
	polyIEEE        = 0x04c11db7
	polyIEEEReflect = 0xedb88320
	polyCastagnoli        = 0x1edc6f41
	polyCastagnoliReflect = 0x82f63b78
	polyKoopman        = 0x741b8cd7
	polyKoopmanReflect = 0xeb31d82e
	polyQ        = 0x814141ab
	polyQReflect = 0xd5828281
)

var (
	crc32IEEEMSBTable        [crc32TableSize]uint32
	crc32IEEELSBTable        [crc32TableSize]uint32
	crc32CastagnoliMSBTable  [crc32TableSize]uint32
	crc32CastagnoliLSBTable  [crc32TableSize]uint32
	crc32KoopmanMSBTable     [crc32TableSize]uint32
	crc32KoopmanLSBTable     [crc32TableSize]uint32
	crc32QMSBTable           [crc32TableSize]uint32
	crc32QLSBTable           [crc32TableSize]uint32
)

func buildMSBTable32(poly uint32) *[crc32TableSize]uint32 {
	var t [crc32TableSize]uint32
	for i := 0; i < crc32TableSize; i++ {
		c := uint32(i) << 24
		for b := 0; b < 8; b++ {
			if c&0x80000000 != 0 {
				c = (c << 1) ^ poly
			} else {
				c <<= 1
			}
		}
		t[i] = c
	}
	return &t
}

func buildLSBTable32(poly uint32) *[crc32TableSize]uint32 {
	var t [crc32TableSize]uint32
	for i := 0; i < crc32TableSize; i++ {
		c := uint32(i)
		for b := 0; b < 8; b++ {
			if c&1 != 0 {
				c = (c >> 1) ^ poly
			} else {
				c >>= 1
			}
		}
		t[i] = c
	}
	return &t
}

func init() {
	crc32IEEEMSBTable = *buildMSBTable32(polyIEEE)
	crc32IEEELSBTable = *buildLSBTable32(polyIEEEReflect)
	crc32CastagnoliMSBTable = *buildMSBTable32(polyCastagnoli)
	crc32CastagnoliLSBTable = *buildLSBTable32(polyCastagnoliReflect)
	crc32KoopmanMSBTable = *buildMSBTable32(polyKoopman)
	crc32KoopmanLSBTable = *buildLSBTable32(polyKoopmanReflect)
	crc32QMSBTable = *buildMSBTable32(polyQ)
	crc32QLSBTable = *buildLSBTable32(polyQReflect)
}

// Table32 returns the CRC-32 table for typ, reporting ok=false for an
// unknown variant.
func Table32(typ int32) (t *[crc32TableSize]uint32, ok bool) {
	switch typ {
	case CRC32DefaultMSB:
		return &crc32IEEEMSBTable, true
	case CRC32DefaultLSB:
		return &crc32IEEELSBTable, true
	case CRC32CastagnoliMSB:
		return &crc32CastagnoliMSBTable, true
	case CRC32CastagnoliLSB:
		return &crc32CastagnoliLSBTable, true
	case CRC32KoopmanMSB:
		return &crc32KoopmanMSBTable, true
	case CRC32KoopmanLSB:
		return &crc32KoopmanLSBTable, true
	case CRC32QMSB:
		return &crc32QMSBTable, true
	case CRC32QLSB:
		return &crc32QLSBTable, true
	case CRC32CksumMSB:
		return &crc32IEEEMSBTable, true
	default:
		return nil, false
	}
}

// LSB32 runs the LSB-first (reflected-table) CRC-32 update over s starting
// from accumulator c.
func LSB32(t *[crc32TableSize]uint32, c uint32, s []byte) uint32 {
	for _, b := range s {
		c = t[byte(c)^b] ^ (c >> 8)
	}
	return c
}

// MSB32 runs the MSB-first CRC-32 update over s starting from accumulator
// c.
func MSB32(t *[crc32TableSize]uint32, c uint32, s []byte) uint32 {
	for _, b := range s {
		c = t[byte(c>>24)^b] ^ (c << 8)
	}
	return c
}

// cksumSize32 folds the message length into an MSB cksum-style CRC per
// POSIX cksum, appending len as a variable-length byte stream, least
// significant byte first.
func cksumSize32(t *[crc32TableSize]uint32, c uint32, length uint32) uint32 {
	var lenBytes []byte
	if length == 0 {
		lenBytes = []byte{0}
	}
	for n := length; n > 0; n >>= 8 {
		lenBytes = append(lenBytes, byte(n))
	}
	return MSB32(t, c, lenBytes)
}

// Sum32 computes the CRC-32 of s using the variant selected by typ.
// CRC32CksumMSB additionally folds len(s) into the checksum per POSIX
// cksum semantics.
func Sum32(s []byte, typ int32) (uint32, bool) {
	t, ok := Table32(typ)
	if !ok {
		return 0, false
	}

	switch typ {
	case CRC32DefaultLSB, CRC32CastagnoliLSB, CRC32KoopmanLSB, CRC32QLSB:
		return ^LSB32(t, 0xffffffff, s), true
	case CRC32CksumMSB:
		c := MSB32(t, 0, s)
		c = cksumSize32(t, c, uint32(len(s)))
		return ^c, true
	default:
		return MSB32(t, 0, s), true
	}
}
