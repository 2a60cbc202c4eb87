package main

import (
	"fmt"

	"github.com/hupe1980/hkmeans/distance"
	"github.com/spf13/cobra"
)

func newClassifyCmd(a *app) *cobra.Command {
	var metric string

	cmd := &cobra.Command{
		Use:   "classify <codebook> <points.csv>",
		Short: "Print the nearest centroid of every CSV point",
		Long: `Load a stored codebook and print, for every row of a CSV file, the index
of the nearest centroid. Use "-" to read points from standard input.

Examples:
  hkmeans classify points.hkcb new-points.csv
  hkmeans classify --metric Manhattan --store s3 points.hkcb new-points.csv`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := distance.ParseMetric(metric)
			if err != nil {
				return err
			}
			fn, err := distance.Provider(m)
			if err != nil {
				return err
			}

			cb, err := a.loadCodebook(cmd, args[0])
			if err != nil {
				return err
			}
			points, err := readPointsFile(args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, p := range points {
				j, err := cb.Nearest(p, fn)
				if err != nil {
					return fmt.Errorf("point %d: %w", i, err)
				}
				fmt.Fprintln(out, j)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&metric, "metric", distance.MetricL2.String(), "Distance metric (L2, SquaredL2, Manhattan, Chebyshev)")
	return cmd
}
