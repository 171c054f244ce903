package api

import (
	"bytes"
	"fmt"

	"github.com/voxelsplace/kvx2vox/kvx"
	"github.com/voxelsplace/kvx2vox/vox"
	"github.com/voxelsplace/kvx2vox/voxel"
)

// Options selects the optional stages of a conversion.
type Options struct {
	// Palette reads the trailing KVX palette and emits an RGBA chunk.
	Palette bool
}

func (o Options) parseOptions() []kvx.Option {
	if o.Palette {
		return []kvx.Option{kvx.WithPalette()}
	}
	return nil
}

// Stats describes a finished conversion.
type Stats struct {
	Size       vox.Size
	Voxels     int
	Palette    bool
	Compressed bool // input was a zstd frame
	OutBytes   int
}

// Decode inflates, parses and expands a .kvx image.
func Decode(kvxBytes []byte, opts Options) (*kvx.Model, []voxel.Voxel, error) {
	data, err := kvx.Inflate(kvxBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("inflate KVX: %w", err)
	}
	m, err := kvx.Parse(data, opts.parseOptions()...)
	if err != nil {
		return nil, nil, fmt.Errorf("parse KVX: %w", err)
	}
	voxels, err := kvx.Expand(m)
	if err != nil {
		return nil, nil, fmt.Errorf("expand KVX: %w", err)
	}
	return m, voxels, nil
}

// KVXToVOX converts a .kvx image (raw or zstd) to .vox bytes.
func KVXToVOX(kvxBytes []byte, opts Options) ([]byte, Stats, error) {
	m, voxels, err := Decode(kvxBytes, opts)
	if err != nil {
		return nil, Stats{}, err
	}
	out := vox.Encode(vox.SizeOf(m.Header), voxels, m.Palette)
	return out, Stats{
		Size:       vox.SizeOf(m.Header),
		Voxels:     len(voxels),
		Palette:    m.Palette != nil,
		Compressed: kvx.Compressed(kvxBytes),
		OutBytes:   len(out),
	}, nil
}

// Summary is what DescribeVOX reports about a .vox file.
type Summary struct {
	Version uint32
	Size    vox.Size
	Voxels  int
	Palette bool
	Chunks  []string
	// Colors counts voxels per color index.
	Colors map[uint8]int
}

// DescribeVOX decodes a .vox image and summarizes it.
func DescribeVOX(voxBytes []byte) (Summary, error) {
	m, err := vox.Decode(voxBytes)
	if err != nil {
		return Summary{}, err
	}
	s := Summary{
		Version: m.Version,
		Size:    m.Size,
		Voxels:  len(m.Voxels),
		Palette: m.Palette != nil,
		Chunks:  m.Chunks,
		Colors:  make(map[uint8]int),
	}
	for _, v := range m.Voxels {
		s.Colors[v.Color]++
	}
	return s, nil
}

// IsVOX reports whether b starts with the VOX magic.
func IsVOX(b []byte) bool {
	return bytes.HasPrefix(b, []byte(vox.Magic))
}
