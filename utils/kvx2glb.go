package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/voxelsplace/kvx2vox/api"
)

// RunKVX2GLB converts a .kvx file into a greedy-meshed .glb preview.
func RunKVX2GLB(ctx context.Context, inPath, outPath string, opts api.Options) error {
	src, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read KVX: %w", err)
	}
	glb, err := api.KVXToGLB(src, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	log.FromContext(ctx).Debug("meshed", "source", inPath, "bytes", len(glb))
	if err := WriteFileAtomic(outPath, glb, 0o644); err != nil {
		return fmt.Errorf("save GLB: %w", err)
	}
	return nil
}
