package kvx

import (
	"fmt"
	"os"
)

type options struct {
	palette bool
}

// Option tunes Parse.
type Option func(*options)

// WithPalette makes Parse read the 768-byte palette at the end of the file.
func WithPalette() Option {
	return func(o *options) { o.palette = true }
}

// ParseFile reads a .kvx file, inflating it first when it is zstd-compressed.
func ParseFile(filename string, opts ...Option) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	data, err = Inflate(data)
	if err != nil {
		return nil, fmt.Errorf("inflate %s: %w", filename, err)
	}
	return Parse(data, opts...)
}

// Parse decodes the first mip level of a .kvx file held in memory. The
// returned model references data; callers must not modify it afterwards.
// Parsing is all or nothing: on error the model is nil.
func Parse(data []byte, opts ...Option) (*Model, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := newCursor(data)
	hdr, err := readHeader(c)
	if err != nil {
		return nil, err
	}
	tables := hdr.TablesSize()
	if uint64(hdr.NumBytes) < headerCounted+tables {
		return nil, formatErr(ErrStructuralMismatch, 0,
			"numBytes %d cannot hold %d bytes of offset tables", hdr.NumBytes, tables)
	}
	if uint64(c.remaining()) < tables {
		return nil, formatErr(ErrTruncatedOffsetTable, int64(c.pos),
			"need %d bytes, have %d", tables, c.remaining())
	}

	m := &Model{Header: hdr}
	m.XOffsets = make([]uint32, int(hdr.SizeX)+1)
	for i := range m.XOffsets {
		if m.XOffsets[i], err = c.u32(); err != nil {
			return nil, formatErr(ErrTruncatedOffsetTable, int64(c.pos), "column offset %d", i)
		}
	}
	m.XYOffsets = make([][]uint16, hdr.SizeX)
	for x := range m.XYOffsets {
		line := make([]uint16, int(hdr.SizeY)+1)
		for y := range line {
			if line[y], err = c.u16(); err != nil {
				return nil, formatErr(ErrTruncatedOffsetTable, int64(c.pos), "row offset %d of column %d", y, x)
			}
		}
		m.XYOffsets[x] = line
	}

	slabLen := uint64(hdr.NumBytes) - headerCounted - tables
	if uint64(c.remaining()) < slabLen {
		return nil, formatErr(ErrTruncatedSlabData, int64(c.pos),
			"need %d bytes, have %d", slabLen, c.remaining())
	}
	slabStart := c.pos
	if m.Slabs, err = c.bytes(int(slabLen)); err != nil {
		return nil, formatErr(ErrTruncatedSlabData, int64(slabStart), "slab region of %d bytes", slabLen)
	}

	if uint64(m.XOffsets[0]) != tables {
		return nil, formatErr(ErrStructuralMismatch, HeaderSize,
			"ground zero %d, offset tables take %d bytes", m.XOffsets[0], tables)
	}
	for i := 1; i < len(m.XOffsets); i++ {
		if m.XOffsets[i] < m.XOffsets[i-1] {
			return nil, formatErr(ErrStructuralMismatch, HeaderSize+int64(i)*4,
				"column offset %d (%d) precedes column offset %d (%d)", i, m.XOffsets[i], i-1, m.XOffsets[i-1])
		}
	}

	if o.palette {
		if m.Palette, err = readPalette(data, c.pos); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func readHeader(c *cursor) (Header, error) {
	var h Header
	words := []*uint32{&h.NumBytes, &h.SizeX, &h.SizeY, &h.SizeZ, &h.Pivot[0], &h.Pivot[1], &h.Pivot[2]}
	for _, w := range words {
		v, err := c.u32()
		if err != nil {
			return h, formatErr(ErrTruncatedHeader, int64(c.pos), "need %d bytes, have %d", HeaderSize, len(c.data))
		}
		*w = v
	}
	return h, nil
}

// readPalette takes the last PaletteSize bytes of data. modelEnd is where
// the first mip level stops; the palette may not overlap it.
func readPalette(data []byte, modelEnd int) (*Palette, error) {
	if len(data)-modelEnd < PaletteSize {
		return nil, formatErr(ErrTruncatedPalette, int64(modelEnd),
			"need %d bytes after the model, have %d", PaletteSize, len(data)-modelEnd)
	}
	raw := data[len(data)-PaletteSize:]
	var p Palette
	for i := range p {
		copy(p[i][:], raw[i*3:i*3+3])
	}
	return &p, nil
}
