package main

import (
	"fmt"
	"math"
	"os"

	"github.com/hupe1980/hkmeans"
	"github.com/hupe1980/hkmeans/codebook"
	"github.com/hupe1980/hkmeans/codec"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration of the command line tool.
type Config struct {
	// K is the number of clusters.
	K int `yaml:"k"`

	// MaxIter is the iteration ceiling.
	MaxIter int `yaml:"max_iter"`

	// Threshold is the convergence threshold on total squared centroid movement.
	Threshold float64 `yaml:"threshold,omitempty"`

	// Seed selects the initial centroids.
	Seed uint64 `yaml:"seed,omitempty"`

	// Workers is the number of goroutines; 0 uses all CPUs.
	Workers int `yaml:"workers,omitempty"`

	Store    StoreConfig    `yaml:"store"`
	Codebook CodebookConfig `yaml:"codebook"`
}

// StoreConfig selects where codebooks are saved and loaded.
type StoreConfig struct {
	// Kind is one of local, memory, s3 or minio.
	Kind string `yaml:"kind"`

	// Path is the root directory of the local store.
	Path string `yaml:"path,omitempty"`

	Bucket    string `yaml:"bucket,omitempty"`
	Prefix    string `yaml:"prefix,omitempty"`
	Endpoint  string `yaml:"endpoint,omitempty"`
	AccessKey string `yaml:"access_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
	UseSSL    bool   `yaml:"use_ssl,omitempty"`
	Region    string `yaml:"region,omitempty"`

	// RateLimit caps store traffic in bytes per second; 0 is unlimited.
	RateLimit int `yaml:"rate_limit,omitempty"`
}

// CodebookConfig controls how codebooks are encoded.
type CodebookConfig struct {
	// Codec is json or go-json.
	Codec string `yaml:"codec,omitempty"`

	// Compression is none, lz4 or zstd.
	Compression string `yaml:"compression,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		K:       16,
		MaxIter: 100,
		Workers: 0,
		Store: StoreConfig{
			Kind: storeLocal,
			Path: ".",
		},
		Codebook: CodebookConfig{
			Codec:       codec.Default.Name(),
			Compression: codebook.CompressionZSTD.String(),
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values that can never succeed.
func (c *Config) Validate() error {
	if c.K < 2 {
		return fmt.Errorf("k must be at least 2, got %d", c.K)
	}
	if c.MaxIter < 1 {
		return fmt.Errorf("max_iter must be at least 1, got %d", c.MaxIter)
	}
	if math.Signbit(c.Threshold) || math.IsNaN(c.Threshold) {
		return fmt.Errorf("threshold must not be negative")
	}
	if err := c.Store.Validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if _, err := c.Codebook.options(); err != nil {
		return fmt.Errorf("codebook: %w", err)
	}
	return nil
}

// Validate checks that the settings required by Kind are present.
func (s *StoreConfig) Validate() error {
	if s.RateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative")
	}
	switch s.Kind {
	case storeLocal:
		if s.Path == "" {
			return fmt.Errorf("path is required for the local store")
		}
	case storeMemory:
	case storeS3:
		if s.Bucket == "" {
			return fmt.Errorf("bucket is required for the s3 store")
		}
	case storeMinio:
		if s.Bucket == "" || s.Endpoint == "" {
			return fmt.Errorf("bucket and endpoint are required for the minio store")
		}
	default:
		return fmt.Errorf("unknown kind %q", s.Kind)
	}
	return nil
}

func (c CodebookConfig) options() ([]codebook.Option, error) {
	cd, ok := codec.ByName(c.Codec)
	if !ok {
		return nil, fmt.Errorf("unknown codec %q", c.Codec)
	}
	comp, err := codebook.ParseCompression(c.Compression)
	if err != nil {
		return nil, err
	}
	return []codebook.Option{codebook.WithCodec(cd), codebook.WithCompression(comp)}, nil
}

func (c *Config) clusterOptions(logger *hkmeans.Logger) []hkmeans.Option {
	return []hkmeans.Option{
		hkmeans.WithConvergenceThreshold(c.Threshold),
		hkmeans.WithSeed(c.Seed),
		hkmeans.WithWorkers(c.Workers),
		hkmeans.WithLogger(logger),
	}
}
