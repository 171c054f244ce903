package kvx

import "github.com/voxelsplace/kvx2vox/voxel"

// Expand walks every (x, y) cell of m in ascending order and emits one voxel
// per slab color byte, in run order. KVX counts Z downward from the top, so
// a color at depth dz of a run starting at zTop lands at SizeZ-(zTop+dz).
// Cull info is skipped; every stored voxel is emitted.
func Expand(m *Model) ([]voxel.Voxel, error) {
	hdr := m.Header
	ground := int64(m.GroundZero())
	slabBase := int64(HeaderSize) + int64(hdr.TablesSize())
	var out []voxel.Voxel

	for x := 0; x < int(hdr.SizeX); x++ {
		col := int64(m.XOffsets[x])
		rows := m.XYOffsets[x]
		for y := 0; y < int(hdr.SizeY); y++ {
			begin := col + int64(rows[y]) - ground
			end := col + int64(rows[y+1]) - ground
			if end < begin {
				return nil, cellErr(ErrNegativeRunLength, slabBase+begin, x, y,
					"row ends at %d before it begins at %d", end, begin)
			}
			if begin == end {
				continue
			}
			if begin < 0 || end > int64(len(m.Slabs)) {
				return nil, cellErr(ErrTruncatedSlabData, slabBase+begin, x, y,
					"row range [%d,%d) outside %d bytes of slab data", begin, end, len(m.Slabs))
			}
			if x > 255 || y > 255 {
				return nil, cellErr(ErrCoordinateRange, slabBase+begin, x, y, "column does not fit in a byte")
			}
			var err error
			out, err = expandRow(out, m.Slabs[begin:end], x, y, int64(hdr.SizeZ), slabBase+begin)
			if err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// expandRow appends the voxels of one row's slab runs. base is the file
// offset of slabs[0], used only for error reporting.
func expandRow(out []voxel.Voxel, slabs []byte, x, y int, sizeZ int64, base int64) ([]voxel.Voxel, error) {
	pos := 0
	for pos < len(slabs) {
		if len(slabs)-pos < slabHeaderSize {
			return nil, cellErr(ErrRunLengthMismatch, base+int64(pos), x, y,
				"%d trailing bytes cannot hold a slab header", len(slabs)-pos)
		}
		zTop, height := int64(slabs[pos]), int(slabs[pos+1])
		pos += slabHeaderSize
		if len(slabs)-pos < height {
			return nil, cellErr(ErrRunLengthMismatch, base+int64(pos), x, y,
				"run of height %d has %d color bytes", height, len(slabs)-pos)
		}
		for dz, color := range slabs[pos : pos+height] {
			z := sizeZ - (zTop + int64(dz))
			if z < 0 || z > 255 {
				return nil, cellErr(ErrCoordinateRange, base+int64(pos+dz), x, y,
					"z %d from zTop %d depth %d", z, zTop, dz)
			}
			out = append(out, voxel.Voxel{X: uint8(x), Y: uint8(y), Z: uint8(z), Color: color})
		}
		pos += height
	}
	return out, nil
}
