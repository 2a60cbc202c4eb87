package main

import (
	"encoding/json"

	"github.com/hupe1980/hkmeans"
	"github.com/spf13/cobra"
)

func newClusterCmd(a *app) *cobra.Command {
	var save string

	cmd := &cobra.Command{
		Use:   "cluster <points.csv>",
		Short: "Cluster CSV points and print the result as JSON",
		Long: `Cluster the rows of a CSV file, one point per row, and print the result
as JSON. Use "-" to read from standard input.

Examples:
  hkmeans cluster -k 4 points.csv
  hkmeans cluster -k 4 --save points.hkcb points.csv | jq '.centroids'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := readPointsFile(args[0])
			if err != nil {
				return err
			}

			res, err := hkmeans.Cluster(cmd.Context(), points, a.cfg.K, a.cfg.MaxIter, a.clusterOptions()...)
			if err != nil {
				return err
			}

			if save != "" {
				if err := a.saveCodebook(cmd, save, res); err != nil {
					return err
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			return enc.Encode(res)
		},
	}

	cmd.Flags().StringVar(&save, "save", "", "Store the codebook under this name")
	return cmd
}
