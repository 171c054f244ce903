package vox

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/voxelsplace/kvx2vox/voxel"
)

var (
	ErrBadMagic       = errors.New("vox: not a VOX file")
	ErrTruncatedChunk = errors.New("vox: truncated chunk")
)

// Model is the subset of a .vox file this package writes.
type Model struct {
	Version uint32
	Size    Size
	Voxels  []voxel.Voxel
	// Palette is nil when the file has no RGBA chunk.
	Palette *[256][4]uint8
	// Chunks lists chunk tags in file order, MAIN children included.
	Chunks []string
}

// Decode parses a single-model .vox image. Unknown chunks are skipped.
func Decode(data []byte) (*Model, error) {
	if len(data) < 8 || string(data[:4]) != Magic {
		return nil, ErrBadMagic
	}
	m := &Model{Version: binary.LittleEndian.Uint32(data[4:8])}
	if err := m.walk(data[8:], 8); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) walk(data []byte, base int) error {
	for pos := 0; pos < len(data); {
		if len(data)-pos < chunkHeaderSize {
			return fmt.Errorf("%w: header at offset %d", ErrTruncatedChunk, base+pos)
		}
		tag := string(data[pos : pos+4])
		content := int(binary.LittleEndian.Uint32(data[pos+4:]))
		children := int(binary.LittleEndian.Uint32(data[pos+8:]))
		pos += chunkHeaderSize
		if content < 0 || children < 0 || len(data)-pos < content+children {
			return fmt.Errorf("%w: %s at offset %d wants %d bytes", ErrTruncatedChunk, tag, base+pos-chunkHeaderSize, content+children)
		}
		m.Chunks = append(m.Chunks, tag)
		if err := m.readContent(tag, data[pos:pos+content], base+pos); err != nil {
			return err
		}
		pos += content
		if err := m.walk(data[pos:pos+children], base+pos); err != nil {
			return err
		}
		pos += children
	}
	return nil
}

func (m *Model) readContent(tag string, b []byte, offset int) error {
	switch tag {
	case "SIZE":
		if len(b) < sizeContentSize {
			return fmt.Errorf("%w: SIZE at offset %d", ErrTruncatedChunk, offset)
		}
		m.Size = Size{
			X: binary.LittleEndian.Uint32(b[0:]),
			Y: binary.LittleEndian.Uint32(b[4:]),
			Z: binary.LittleEndian.Uint32(b[8:]),
		}
	case "XYZI":
		if len(b) < 4 {
			return fmt.Errorf("%w: XYZI at offset %d", ErrTruncatedChunk, offset)
		}
		n := int(binary.LittleEndian.Uint32(b))
		if len(b)-4 < n*4 {
			return fmt.Errorf("%w: XYZI at offset %d holds %d of %d voxels", ErrTruncatedChunk, offset, (len(b)-4)/4, n)
		}
		m.Voxels = make([]voxel.Voxel, n)
		for i := range m.Voxels {
			r := b[4+i*4:]
			m.Voxels[i] = voxel.Voxel{X: r[0], Y: r[1], Z: r[2], Color: r[3]}
		}
	case "RGBA":
		if len(b) < rgbaContentSize {
			return fmt.Errorf("%w: RGBA at offset %d", ErrTruncatedChunk, offset)
		}
		var pal [256][4]uint8
		for i := range pal {
			copy(pal[i][:], b[i*4:i*4+4])
		}
		m.Palette = &pal
	}
	return nil
}
