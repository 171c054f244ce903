// Package cli implements the kvx2vox command-line interface.
//
// The root command converts one SLAB6 .kvx model to a MagicaVoxel .vox:
//
//	kvx2vox [--no-palette] model.kvx model.vox
//
// Subcommands cover GLB previews (glb), TOML batch manifests (batch),
// zstd-packing sources (compress) and file inspection (info). Every command
// accepts --verbose for debug logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/voxelsplace/kvx2vox/api"
	"github.com/voxelsplace/kvx2vox/utils"
)

const appName = "kvx2vox"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var version = "dev"

// SetVersion sets the string shown by --version.
func SetVersion(v string) { version = v }

// CLI holds shared state for all commands.
type CLI struct {
	Logger  *log.Logger
	verbose bool
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the root command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	var noPalette bool

	root := &cobra.Command{
		Use:   appName + " <source.kvx> <target.vox>",
		Short: "Convert SLAB6 .kvx voxel models to MagicaVoxel .vox",
		Long: `kvx2vox decodes the column/row offset index and slab runs of a SLAB6 .kvx
model and writes the voxels as a MagicaVoxel .vox file. The KVX palette is
rescaled from 6 to 8 bits and written as an RGBA chunk unless --no-palette
is given. zstd-compressed sources are accepted.`,
		Version:       version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(log.WithContext(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(c.Logger)
			stats, err := utils.RunKVX2VOX(cmd.Context(), args[0], args[1], api.Options{Palette: !noPalette})
			if err != nil {
				return err
			}
			prog.done("Wrote "+args[1], "voxels", stats.Voxels, "bytes", stats.OutBytes)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().BoolVar(&noPalette, "no-palette", false, "skip the palette and omit the RGBA chunk")

	root.AddCommand(c.glbCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.compressCommand())
	root.AddCommand(c.infoCommand())
	return root
}
