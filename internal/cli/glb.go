package cli

import (
	"github.com/spf13/cobra"

	"github.com/voxelsplace/kvx2vox/api"
	"github.com/voxelsplace/kvx2vox/utils"
)

func (c *CLI) glbCommand() *cobra.Command {
	var noPalette bool
	cmd := &cobra.Command{
		Use:   "glb <source.kvx> <target.glb>",
		Short: "Mesh a .kvx model into a .glb preview",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(c.Logger)
			if err := utils.RunKVX2GLB(cmd.Context(), args[0], args[1], api.Options{Palette: !noPalette}); err != nil {
				return err
			}
			prog.done("Wrote " + args[1])
			return nil
		},
	}
	cmd.Flags().BoolVar(&noPalette, "no-palette", false, "color by index instead of the KVX palette")
	return cmd
}
