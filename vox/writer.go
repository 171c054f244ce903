// Package vox writes and reads the MagicaVoxel .vox chunk layout.
package vox

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/voxelsplace/kvx2vox/kvx"
	"github.com/voxelsplace/kvx2vox/voxel"
)

const (
	Magic   = "VOX "
	Version = 150

	chunkHeaderSize = 12
	sizeContentSize = 12
	rgbaContentSize = 256 * 4
)

// Size is the model extent written to the SIZE chunk.
type Size struct {
	X, Y, Z uint32
}

func writeChunkHeader(buf *bytes.Buffer, tag string, content, children uint32) {
	buf.WriteString(tag)
	_ = binary.Write(buf, binary.LittleEndian, content)
	_ = binary.Write(buf, binary.LittleEndian, children)
}

// Encode returns the .vox image for the given voxels. The RGBA chunk is
// emitted only when pal is non-nil.
func Encode(size Size, voxels []voxel.Voxel, pal *kvx.Palette) []byte {
	xyziContent := uint32(4*len(voxels) + 4)
	children := uint32(chunkHeaderSize+sizeContentSize) + chunkHeaderSize + xyziContent
	if pal != nil {
		children += chunkHeaderSize + rgbaContentSize
	}

	buf := new(bytes.Buffer)
	buf.Grow(8 + chunkHeaderSize + int(children))
	buf.WriteString(Magic)
	_ = binary.Write(buf, binary.LittleEndian, uint32(Version))

	writeChunkHeader(buf, "MAIN", 0, children)

	writeChunkHeader(buf, "SIZE", sizeContentSize, 0)
	_ = binary.Write(buf, binary.LittleEndian, size.X)
	_ = binary.Write(buf, binary.LittleEndian, size.Y)
	_ = binary.Write(buf, binary.LittleEndian, size.Z)

	writeChunkHeader(buf, "XYZI", xyziContent, 0)
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(voxels)))
	for _, v := range voxels {
		buf.Write([]byte{v.X, v.Y, v.Z, v.Color})
	}

	if pal != nil {
		writeChunkHeader(buf, "RGBA", rgbaContentSize, 0)
		for i := range pal {
			c := pal.RGBA(i)
			buf.Write(c[:])
		}
	}
	return buf.Bytes()
}

// Write encodes into w.
func Write(w io.Writer, size Size, voxels []voxel.Voxel, pal *kvx.Palette) error {
	_, err := w.Write(Encode(size, voxels, pal))
	return err
}

// SizeOf returns the SIZE chunk values for a KVX header.
func SizeOf(h kvx.Header) Size {
	return Size{X: h.SizeX, Y: h.SizeY, Z: h.SizeZ}
}
