package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/hkmeans/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 16, cfg.K)
	assert.Equal(t, 100, cfg.MaxIter)
	assert.Equal(t, storeLocal, cfg.Store.Kind)
	assert.Equal(t, "go-json", cfg.Codebook.Codec)
	assert.Equal(t, "zstd", cfg.Codebook.Compression)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("Overrides", func(t *testing.T) {
		path := writeFile(t, dir, "full.yaml", `
k: 8
max_iter: 20
threshold: 0.5
seed: 42
workers: 4
store:
  kind: minio
  bucket: palettes
  prefix: team/
  endpoint: localhost:9000
  access_key: minio
  secret_key: minio123
  use_ssl: true
codebook:
  codec: json
  compression: lz4
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 8, cfg.K)
		assert.Equal(t, 20, cfg.MaxIter)
		assert.Equal(t, 0.5, cfg.Threshold)
		assert.Equal(t, uint64(42), cfg.Seed)
		assert.Equal(t, 4, cfg.Workers)
		assert.Equal(t, StoreConfig{
			Kind:      storeMinio,
			Bucket:    "palettes",
			Prefix:    "team/",
			Endpoint:  "localhost:9000",
			AccessKey: "minio",
			SecretKey: "minio123",
			UseSSL:    true,
			Path:      ".",
		}, cfg.Store)
		assert.Equal(t, CodebookConfig{Codec: "json", Compression: "lz4"}, cfg.Codebook)

		opts, err := cfg.Codebook.options()
		require.NoError(t, err)
		assert.Len(t, opts, 2)
	})

	t.Run("Partial", func(t *testing.T) {
		path := writeFile(t, dir, "partial.yaml", "k: 3\n")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 3, cfg.K)
		assert.Equal(t, DefaultConfig().MaxIter, cfg.MaxIter)
		assert.Equal(t, DefaultConfig().Store, cfg.Store)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Malformed", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yaml", "k: [1, 2\n")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"K", func(c *Config) { c.K = 1 }},
		{"MaxIter", func(c *Config) { c.MaxIter = 0 }},
		{"Threshold", func(c *Config) { c.Threshold = -1 }},
		{"StoreKind", func(c *Config) { c.Store.Kind = "ftp" }},
		{"LocalPath", func(c *Config) { c.Store.Path = "" }},
		{"S3Bucket", func(c *Config) { c.Store = StoreConfig{Kind: storeS3} }},
		{"MinioEndpoint", func(c *Config) { c.Store = StoreConfig{Kind: storeMinio, Bucket: "b"} }},
		{"RateLimit", func(c *Config) { c.Store.RateLimit = -1 }},
		{"Codec", func(c *Config) { c.Codebook.Codec = "gob" }},
		{"Compression", func(c *Config) { c.Codebook.Compression = "brotli" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := DefaultConfig()
	cfg.Store = StoreConfig{Kind: storeMemory}
	assert.NoError(t, cfg.Validate())
}

func TestOpenStore(t *testing.T) {
	ctx := t.Context()

	store, err := openStore(ctx, StoreConfig{Kind: storeMemory})
	require.NoError(t, err)
	assert.NotNil(t, store)

	store, err = openStore(ctx, StoreConfig{Kind: storeLocal, Path: t.TempDir()})
	require.NoError(t, err)
	assert.NotNil(t, store)

	store, err = openStore(ctx, StoreConfig{Kind: storeMinio, Bucket: "b", Endpoint: "localhost:9000"})
	require.NoError(t, err)
	assert.NotNil(t, store)

	store, err = openStore(ctx, StoreConfig{Kind: storeMemory, RateLimit: 1 << 20})
	require.NoError(t, err)
	assert.IsType(t, &blobstore.ThrottledStore{}, store)

	_, err = openStore(ctx, StoreConfig{Kind: "ftp"})
	assert.Error(t, err)
}
