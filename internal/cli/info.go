package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/voxelsplace/kvx2vox/api"
	"github.com/voxelsplace/kvx2vox/kvx"
	"github.com/voxelsplace/kvx2vox/vox"
)

func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.kvx|file.vox>",
		Short: "Print the header, size and voxel count of a .kvx or .vox file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if api.IsVOX(data) {
				return describeVOX(cmd.OutOrStdout(), data)
			}
			return describeKVX(cmd.OutOrStdout(), data)
		},
	}
}

func describeVOX(w io.Writer, data []byte) error {
	s, err := api.DescribeVOX(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "format:  VOX %d\n", s.Version)
	fmt.Fprintf(w, "size:    %d x %d x %d\n", s.Size.X, s.Size.Y, s.Size.Z)
	fmt.Fprintf(w, "voxels:  %d\n", s.Voxels)
	fmt.Fprintf(w, "palette: %t\n", s.Palette)
	fmt.Fprintf(w, "chunks:  %v\n", s.Chunks)
	fmt.Fprintf(w, "colors:  %d distinct\n", len(s.Colors))
	idx := make([]int, 0, len(s.Colors))
	for k := range s.Colors {
		idx = append(idx, int(k))
	}
	sort.Ints(idx)
	for _, k := range idx {
		fmt.Fprintf(w, "  %3d: %d\n", k, s.Colors[uint8(k)])
	}
	return nil
}

func describeKVX(w io.Writer, data []byte) error {
	m, voxels, err := api.Decode(data, api.Options{Palette: true})
	if errors.Is(err, kvx.ErrTruncatedPalette) {
		m, voxels, err = api.Decode(data, api.Options{})
	}
	if err != nil {
		return err
	}
	h := m.Header
	format := "KVX"
	if kvx.Compressed(data) {
		format = "KVX (zstd)"
	}
	fmt.Fprintf(w, "format:  %s\n", format)
	fmt.Fprintf(w, "size:    %d x %d x %d\n", h.SizeX, h.SizeY, h.SizeZ)
	fmt.Fprintf(w, "pivot:   %d %d %d\n", h.Pivot[0], h.Pivot[1], h.Pivot[2])
	fmt.Fprintf(w, "bytes:   %d slab, %d tables\n", len(m.Slabs), h.TablesSize())
	fmt.Fprintf(w, "voxels:  %d\n", len(voxels))
	fmt.Fprintf(w, "palette: %t\n", m.Palette != nil)
	fmt.Fprintf(w, "vox out: %d bytes\n", len(vox.Encode(vox.SizeOf(h), voxels, m.Palette)))
	return nil
}
