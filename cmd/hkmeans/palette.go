package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPaletteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "palette <codebook>",
		Short: "Print the colors of a stored RGB codebook",
		Long: `Print the colors of a stored RGB codebook, one hex triplet per line.

Example:
  hkmeans palette sunset.hkcb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cb, err := a.loadCodebook(cmd, args[0])
			if err != nil {
				return err
			}
			palette, err := cb.PaletteRGB()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := 0; i < len(palette); i += 3 {
				fmt.Fprintf(out, "#%02x%02x%02x\n", palette[i], palette[i+1], palette[i+2])
			}
			return nil
		},
	}
}
