package cli

import (
	"github.com/spf13/cobra"

	"github.com/voxelsplace/kvx2vox/utils"
)

func (c *CLI) compressCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compress <source.kvx> <target.kvx.zst>",
		Short: "Validate a .kvx model and store it zstd-compressed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(c.Logger)
			if err := utils.RunCompressKVX(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			prog.done("Wrote " + args[1])
			return nil
		},
	}
}
