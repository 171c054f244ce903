// Package kvxtest assembles .kvx images in memory for tests.
package kvxtest

import (
	"bytes"
	"encoding/binary"

	"github.com/voxelsplace/kvx2vox/kvx"
)

// Run is one slab run: colors stacked downward from ZTop.
type Run struct {
	ZTop   uint8
	Cull   uint8
	Colors []uint8
}

// Builder lays out slab runs cell by cell and encodes a single-mip .kvx.
type Builder struct {
	SizeX, SizeY, SizeZ uint32
	Pivot               [3]uint32
	Palette             *kvx.Palette

	cells map[[2]int][]Run
}

func New(sizeX, sizeY, sizeZ uint32) *Builder {
	return &Builder{SizeX: sizeX, SizeY: sizeY, SizeZ: sizeZ, cells: make(map[[2]int][]Run)}
}

// Add appends a run to cell (x, y).
func (b *Builder) Add(x, y int, zTop uint8, colors ...uint8) *Builder {
	k := [2]int{x, y}
	b.cells[k] = append(b.cells[k], Run{ZTop: zTop, Colors: colors})
	return b
}

// WithPalette attaches a palette written after the model.
func (b *Builder) WithPalette(p kvx.Palette) *Builder {
	b.Palette = &p
	return b
}

// Header returns the header Bytes would write, NumBytes left zero.
func (b *Builder) Header() kvx.Header {
	return kvx.Header{SizeX: b.SizeX, SizeY: b.SizeY, SizeZ: b.SizeZ, Pivot: b.Pivot}
}

// Layout returns the offset tables and slab data for the added runs.
func (b *Builder) Layout() (xoff []uint32, xyoff [][]uint16, slabs []byte) {
	ground := uint32(b.Header().TablesSize())
	xoff = make([]uint32, b.SizeX+1)
	xyoff = make([][]uint16, b.SizeX)
	for x := 0; x < int(b.SizeX); x++ {
		xoff[x] = ground + uint32(len(slabs))
		colStart := len(slabs)
		xyoff[x] = make([]uint16, b.SizeY+1)
		for y := 0; y < int(b.SizeY); y++ {
			xyoff[x][y] = uint16(len(slabs) - colStart)
			for _, r := range b.cells[[2]int{x, y}] {
				slabs = append(slabs, r.ZTop, uint8(len(r.Colors)), r.Cull)
				slabs = append(slabs, r.Colors...)
			}
		}
		xyoff[x][b.SizeY] = uint16(len(slabs) - colStart)
	}
	xoff[b.SizeX] = ground + uint32(len(slabs))
	return xoff, xyoff, slabs
}

// Bytes encodes the model.
func (b *Builder) Bytes() []byte {
	xoff, xyoff, slabs := b.Layout()
	return Encode(b.Header(), xoff, xyoff, slabs, b.Palette)
}

// Encode writes raw tables, letting tests build malformed files. A zero
// h.NumBytes is filled in from the table and slab sizes.
func Encode(h kvx.Header, xoff []uint32, xyoff [][]uint16, slabs []byte, pal *kvx.Palette) []byte {
	if h.NumBytes == 0 {
		n := 24 + 4*len(xoff) + len(slabs)
		for _, line := range xyoff {
			n += 2 * len(line)
		}
		h.NumBytes = uint32(n)
	}
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, h.NumBytes)
	_ = binary.Write(&buf, binary.LittleEndian, h.SizeX)
	_ = binary.Write(&buf, binary.LittleEndian, h.SizeY)
	_ = binary.Write(&buf, binary.LittleEndian, h.SizeZ)
	_ = binary.Write(&buf, binary.LittleEndian, h.Pivot)
	_ = binary.Write(&buf, binary.LittleEndian, xoff)
	for _, line := range xyoff {
		_ = binary.Write(&buf, binary.LittleEndian, line)
	}
	buf.Write(slabs)
	if pal != nil {
		for _, e := range pal {
			buf.Write(e[:])
		}
	}
	return buf.Bytes()
}

// Ramp returns a palette whose entry i is (i%64, (i/4)%64, 63-i%64).
func Ramp() kvx.Palette {
	var p kvx.Palette
	for i := range p {
		p[i] = [3]uint8{uint8(i % 64), uint8((i / 4) % 64), uint8(63 - i%64)}
	}
	return p
}
