// Package crc implements the CRC-16/32/64 checksum families, ported from
// demoz lib/crc16.c/crc32.c/crc64.c's variant-selectable contract: a
// polynomial table keyed by a small variant-type constant, with MSB- and
// LSB-first table-driven update loops that never shift in the same
// direction as each other's table construction.
package crc

import "demozcrypt/demozerr"

// CRC-16 variant types, matching lib/crc.h.
const (
	CRC16DefaultMSB = 0
	CRC16DefaultLSB = 1
)

const crc16TableSize = 256

var crc16MSBTable [crc16TableSize]uint16
var crc16LSBTable [crc16TableSize]uint16

func init() {
	const polyMSB = 0x8005
	const polyLSB = 0xa001 // reflected form of 0x8005

	for i := 0; i < crc16TableSize; i++ {
		c := uint16(i) << 8
		for b := 0; b < 8; b++ {
			if c&0x8000 != 0 {
				c = (c << 1) ^ polyMSB
			} else {
				c <<= 1
			}
		}
		crc16MSBTable[i] = c
	}

	for i := 0; i < crc16TableSize; i++ {
		c := uint16(i)
		for b := 0; b < 8; b++ {
			if c&1 != 0 {
				c = (c >> 1) ^ polyLSB
			} else {
				c >>= 1
			}
		}
		crc16LSBTable[i] = c
	}
}

// Table16 returns the CRC-16 table for typ.
func Table16(typ int32) (*[crc16TableSize]uint16, error) {
	switch typ {
	case CRC16DefaultMSB:
		return &crc16MSBTable, nil
	case CRC16DefaultLSB:
		return &crc16LSBTable, nil
	default:
		return nil, demozerr.New(demozerr.ParamRange, "crc.Table16", "unknown crc16 type")
	}
}

// LSB16 runs the LSB-first (reflected-table) CRC-16 update over s starting
// from accumulator c.
func LSB16(t *[crc16TableSize]uint16, c uint16, s []byte) uint16 {
	for _, b := range s {
		c = t[byte(c)^b] ^ (c >> 8)
	}
	return c
}

// MSB16 runs the MSB-first CRC-16 update over s starting from accumulator
// c.
func MSB16(t *[crc16TableSize]uint16, c uint16, s []byte) uint16 {
	for _, b := range s {
		c = t[byte(c>>8)^b] ^ (c << 8)
	}
	return c
}

// Sum16 computes the CRC-16 of s using the variant selected by typ.
func Sum16(s []byte, typ int32) (uint16, error) {
	t, err := Table16(typ)
	if err != nil {
		return 0, err
	}
	if typ == CRC16DefaultLSB {
		return LSB16(t, 0, s), nil
	}
	return MSB16(t, 0, s), nil
}
