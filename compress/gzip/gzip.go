// Package gzip implements a thin RFC 1952 container reader over
// compress/inflate, the Go-native supplement for the demoz
// example/util_ungz.c tool this repository's Non-goals exclude as a CLI
// but whose container framing (header, trailer CRC-32 + ISIZE check) a
// bare inflate engine cannot perform on its own (spec.md §8 scenario 6).
package gzip

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"

	"demozcrypt/checksum/crc"
	"demozcrypt/compress/inflate"
	"demozcrypt/demozerr"
)

const (
	magic1        = 0x1f
	magic2        = 0x8b
	methodDeflate = 8

	flagText    = 1 << 0
	flagHCRC    = 1 << 1
	flagExtra   = 1 << 2
	flagName    = 1 << 3
	flagComment = 1 << 4
)

// Header carries the gzip member fields a caller may want to inspect.
type Header struct {
	ModTime uint32
	OS      byte
	Name    string
	Comment string
}

// Reader decompresses a single gzip member from an underlying io.Reader,
// verifying the trailer's CRC-32 and ISIZE against the bytes it actually
// emits.
type Reader struct {
	br  *bufio.Reader
	inf *inflate.Context

	Header Header

	crcTable *[256]uint32
	crc      uint32
	size     uint32

	chunk []byte
	done  bool
	err   error
}

// NewReader parses the gzip member header from r and returns a Reader
// positioned to decompress the payload that follows.
func NewReader(r io.Reader) (*Reader, error) {
	g := &Reader{br: bufio.NewReader(r), inf: inflate.New()}
	g.crcTable, _ = crc.Table32(crc.CRC32DefaultLSB)
	g.crc = 0xffffffff

	if err := g.readHeader(); err != nil {
		g.err = err
		return nil, err
	}
	return g, nil
}

func (g *Reader) readHeader() error {
	var hdr [10]byte
	if _, err := io.ReadFull(g.br, hdr[:]); err != nil {
		return demozerr.New(demozerr.Malformed, "gzip.readHeader", "short header")
	}
	if hdr[0] != magic1 || hdr[1] != magic2 {
		return demozerr.New(demozerr.Malformed, "gzip.readHeader", "bad magic")
	}
	if hdr[2] != methodDeflate {
		return demozerr.New(demozerr.ParamRange, "gzip.readHeader", "unsupported compression method")
	}
	flg := hdr[3]
	g.Header.ModTime = binary.LittleEndian.Uint32(hdr[4:8])
	g.Header.OS = hdr[9]

	if flg&flagExtra != 0 {
		var xlenBuf [2]byte
		if _, err := io.ReadFull(g.br, xlenBuf[:]); err != nil {
			return demozerr.New(demozerr.Malformed, "gzip.readHeader", "short extra length")
		}
		xlen := binary.LittleEndian.Uint16(xlenBuf[:])
		if _, err := io.CopyN(io.Discard, g.br, int64(xlen)); err != nil {
			return demozerr.New(demozerr.Malformed, "gzip.readHeader", "short extra field")
		}
	}
	if flg&flagName != 0 {
		name, err := g.readCString()
		if err != nil {
			return err
		}
		g.Header.Name = name
	}
	if flg&flagComment != 0 {
		comment, err := g.readCString()
		if err != nil {
			return err
		}
		g.Header.Comment = comment
	}
	if flg&flagHCRC != 0 {
		var hcrc [2]byte
		if _, err := io.ReadFull(g.br, hcrc[:]); err != nil {
			return demozerr.New(demozerr.Malformed, "gzip.readHeader", "short header CRC")
		}
	}
	return nil
}

func (g *Reader) readCString() (string, error) {
	var buf []byte
	for {
		b, err := g.br.ReadByte()
		if err != nil {
			return "", demozerr.New(demozerr.Malformed, "gzip.readHeader", "unterminated string field")
		}
		if b == 0 {
			break
		}
		buf = append(buf, b)
	}
	return string(buf), nil
}

func (g *Reader) observe(b []byte) {
	g.crc = crc.LSB32(g.crcTable, g.crc, b)
	g.size += uint32(len(b))
}

// Read implements io.Reader, decompressing the gzip payload and verifying
// the trailer once the stream ends.
func (g *Reader) Read(p []byte) (int, error) {
	if g.err != nil {
		return 0, g.err
	}
	if len(g.chunk) > 0 {
		n := copy(p, g.chunk)
		g.chunk = g.chunk[n:]
		g.observe(p[:n])
		return n, nil
	}
	if g.done {
		return 0, io.EOF
	}

	var in [4096]byte
	for {
		n, rerr := g.br.Read(in[:])
		flush := rerr != nil

		emitted, end, ierr := g.inf.Inflate(in[:n], flush)
		if ierr != nil {
			g.err = ierr
			return 0, ierr
		}
		if len(emitted) > 0 {
			k := copy(p, emitted)
			if k < len(emitted) {
				g.chunk = emitted[k:]
			}
			g.observe(p[:k])
			return k, nil
		}
		if end {
			if err := g.verifyTrailer(); err != nil {
				g.err = err
				return 0, err
			}
			g.done = true
			return 0, io.EOF
		}
		if n == 0 && rerr != nil {
			if rerr == io.EOF {
				g.err = demozerr.New(demozerr.Malformed, "gzip.Read", "truncated stream")
			} else {
				g.err = rerr
			}
			return 0, g.err
		}
	}
}

func (g *Reader) verifyTrailer() error {
	var trailer [8]byte
	if _, err := io.ReadFull(g.br, trailer[:]); err != nil {
		return demozerr.New(demozerr.Malformed, "gzip.verifyTrailer", "short trailer")
	}
	wantCRC := binary.LittleEndian.Uint32(trailer[0:4])
	wantSize := binary.LittleEndian.Uint32(trailer[4:8])

	if gotCRC := ^g.crc; gotCRC != wantCRC {
		return demozerr.New(demozerr.Malformed, "gzip.verifyTrailer", "CRC-32 mismatch")
	}
	if g.size != wantSize {
		return demozerr.New(demozerr.Malformed, "gzip.verifyTrailer", "ISIZE mismatch")
	}
	return nil
}

// Decompress is a one-shot convenience wrapper: it gunzips data entirely
// into memory and returns the payload once the trailer has verified.
func Decompress(data []byte) ([]byte, error) {
	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}
