package main

import (
	"fmt"
	"log/slog"

	"github.com/hupe1980/hkmeans"
	"github.com/hupe1980/hkmeans/blobstore"
	"github.com/hupe1980/hkmeans/codebook"
	"github.com/spf13/cobra"
)

// app holds the state shared by all subcommands.
type app struct {
	configPath string
	storeKind  string
	logLevel   string

	k         int
	maxIter   int
	seed      uint64
	workers   int
	threshold float64

	cfg    *Config
	store  blobstore.BlobStore
	logger *hkmeans.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "hkmeans",
		Short: "k-means clustering and color quantization",
		Long: `hkmeans clusters points with Hamerly's accelerated k-means and reduces
images to small color palettes. Trained codebooks can be stored locally,
in memory, in S3 or in MinIO.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&a.storeKind, "store", "", "Codebook store (local, memory, s3, minio)")
	flags.StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.IntVarP(&a.k, "k", "k", 0, "Number of clusters (overrides config)")
	flags.IntVar(&a.maxIter, "max-iter", 0, "Iteration ceiling (overrides config)")
	flags.Uint64Var(&a.seed, "seed", 0, "Seed for the initial centroids (overrides config)")
	flags.IntVar(&a.workers, "workers", 0, "Worker goroutines, 0 for all CPUs (overrides config)")
	flags.Float64Var(&a.threshold, "threshold", 0, "Convergence threshold (overrides config)")

	cmd.AddCommand(
		newQuantizeCmd(a),
		newClusterCmd(a),
		newClassifyCmd(a),
		newPaletteCmd(a),
	)
	return cmd
}

// setup loads the configuration, applies flag overrides and opens the store.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", a.logLevel)
	}
	a.logger = hkmeans.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg := DefaultConfig()
	if a.configPath != "" {
		loaded, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store.Kind = a.storeKind
	}
	if flags.Changed("k") {
		cfg.K = a.k
	}
	if flags.Changed("max-iter") {
		cfg.MaxIter = a.maxIter
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("threshold") {
		cfg.Threshold = a.threshold
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	store, err := openStore(cmd.Context(), cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.store = store
	return nil
}

func (a *app) clusterOptions() []hkmeans.Option {
	return a.cfg.clusterOptions(a.logger)
}

func (a *app) saveCodebook(cmd *cobra.Command, name string, res *hkmeans.Result) error {
	cb := res.Codebook()
	if cb == nil {
		return fmt.Errorf("nothing to save: no centroids")
	}

	opts, err := a.cfg.Codebook.options()
	if err != nil {
		return err
	}
	if err := codebook.Save(cmd.Context(), a.store, name, cb, opts...); err != nil {
		return err
	}
	a.logger.InfoContext(cmd.Context(), "codebook saved", "name", name, "k", cb.K, "dimension", cb.Dim)
	return nil
}

func (a *app) loadCodebook(cmd *cobra.Command, name string) (*codebook.Codebook, error) {
	return codebook.Load(cmd.Context(), a.store, name)
}
