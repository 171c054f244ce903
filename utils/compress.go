package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/voxelsplace/kvx2vox/kvx"
)

// RunCompressKVX stores a .kvx file as a zstd frame after checking that it
// parses. Already compressed input is rejected.
func RunCompressKVX(ctx context.Context, inPath, outPath string) error {
	src, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read KVX: %w", err)
	}
	if kvx.Compressed(src) {
		return fmt.Errorf("%s is already zstd-compressed", inPath)
	}
	if _, err := kvx.Parse(src); err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	out, err := kvx.Deflate(src)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	log.FromContext(ctx).Debug("compressed", "source", inPath, "from", len(src), "to", len(out))
	return WriteFileAtomic(outPath, out, 0o644)
}
