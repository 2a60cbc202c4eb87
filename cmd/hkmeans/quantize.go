package main

import (
	"fmt"

	"github.com/hupe1980/hkmeans"
	"github.com/spf13/cobra"
)

func newQuantizeCmd(a *app) *cobra.Command {
	var save string

	cmd := &cobra.Command{
		Use:   "quantize <in> <out.png>",
		Short: "Reduce an image to k colors",
		Long: `Reduce an image to k colors and write the result as PNG.

Supported input formats: png, jpeg, gif, bmp, tiff, webp.

Examples:
  hkmeans quantize -k 8 photo.jpg photo-8.png
  hkmeans quantize -k 16 --save sunset.hkcb sunset.webp sunset.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, format, err := decodeImage(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			res, err := hkmeans.ClusterRGB(ctx, hkmeans.ImageRGB(img), a.cfg.K, a.cfg.MaxIter, a.clusterOptions()...)
			if err != nil {
				return err
			}
			paletted, err := res.Paletted(img.Bounds())
			if err != nil {
				return err
			}
			if err := writePNG(args[1], paletted); err != nil {
				return err
			}

			if save != "" {
				if err := a.saveCodebook(cmd, save, res); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %dx%d -> %d colors in %d iterations\n",
				args[1], format, img.Bounds().Dx(), img.Bounds().Dy(), len(paletted.Palette), res.Iterations)
			return nil
		},
	}

	cmd.Flags().StringVar(&save, "save", "", "Store the palette codebook under this name")
	return cmd
}
