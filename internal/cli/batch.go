package cli

import (
	"github.com/spf13/cobra"

	"github.com/voxelsplace/kvx2vox/utils"
)

func (c *CLI) batchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <manifest.toml>",
		Short: "Convert every job listed in a TOML manifest",
		Long: `batch reads a TOML manifest of [[job]] tables (source, target, optional
palette) plus optional top-level workers and palette defaults. Relative paths
are resolved against the manifest's directory. Identical sources are
converted once.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(c.Logger)
			res, err := utils.RunBatch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			prog.done("Batch finished", "jobs", res.Jobs, "converted", res.Converted, "voxels", res.Voxels)
			return nil
		},
	}
}
