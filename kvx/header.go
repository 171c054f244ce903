// Package kvx decodes SLAB6 .kvx voxel models: the column and row offset
// index, the slab run-length data and the trailing 6-bit palette.
package kvx

const (
	// HeaderSize is the on-disk header: numBytes plus six u32 words.
	HeaderSize = 28
	// headerCounted is the part of the header that numBytes includes.
	headerCounted = HeaderSize - 4

	PaletteEntries = 256
	PaletteSize    = PaletteEntries * 3

	// slabHeaderSize covers zTop, height and cullInfo.
	slabHeaderSize = 3
)

// Header holds the fixed fields at the start of a .kvx file. Pivot is kept
// as raw words and never interpreted.
type Header struct {
	NumBytes uint32
	SizeX    uint32
	SizeY    uint32
	SizeZ    uint32
	Pivot    [3]uint32
}

// TablesSize is the byte size of the column and row offset tables, which is
// also where slab data starts ("ground zero").
func (h Header) TablesSize() uint64 {
	return (uint64(h.SizeX)+1)*4 + uint64(h.SizeX)*(uint64(h.SizeY)+1)*2
}

// Model is one parsed mip level with its optional palette.
type Model struct {
	Header Header
	// XOffsets has SizeX+1 absolute offsets; XOffsets[0] is ground zero.
	XOffsets []uint32
	// XYOffsets has SizeX columns of SizeY+1 offsets relative to XOffsets[x].
	XYOffsets [][]uint16
	// Slabs is the slab data region addressed from ground zero.
	Slabs []byte
	// Palette is nil unless requested with WithPalette.
	Palette *Palette
}

// GroundZero is the base that XOffsets entries are measured from.
func (m *Model) GroundZero() uint32 { return m.XOffsets[0] }
