package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"

	"github.com/voxelsplace/kvx2vox/api"
)

// RunKVX2VOX reads a .kvx file and writes the converted .vox. Nothing is
// written unless the whole conversion succeeds.
func RunKVX2VOX(ctx context.Context, inPath, outPath string, opts api.Options) (api.Stats, error) {
	logger := log.FromContext(ctx)
	src, err := os.ReadFile(inPath)
	if err != nil {
		return api.Stats{}, fmt.Errorf("read KVX: %w", err)
	}
	out, stats, err := api.KVXToVOX(src, opts)
	if err != nil {
		return api.Stats{}, fmt.Errorf("%s: %w", inPath, err)
	}
	logger.Debug("converted",
		"source", inPath,
		"size", fmt.Sprintf("%dx%dx%d", stats.Size.X, stats.Size.Y, stats.Size.Z),
		"voxels", stats.Voxels,
		"palette", stats.Palette,
		"zstd", stats.Compressed,
		"digest", fmt.Sprintf("%016x", xxhash.Sum64(out)),
	)
	if err := WriteFileAtomic(outPath, out, 0o644); err != nil {
		return api.Stats{}, fmt.Errorf("save VOX: %w", err)
	}
	return stats, nil
}
