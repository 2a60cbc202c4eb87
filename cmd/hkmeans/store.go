package main

import (
	"context"
	"fmt"

	"github.com/hupe1980/hkmeans/blobstore"
	"github.com/hupe1980/hkmeans/blobstore/minio"
	"github.com/hupe1980/hkmeans/blobstore/s3"
)

const (
	storeLocal  = "local"
	storeMemory = "memory"
	storeS3     = "s3"
	storeMinio  = "minio"
)

// openStore creates the codebook store described by cfg.
func openStore(ctx context.Context, cfg StoreConfig) (blobstore.BlobStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return blobstore.NewThrottledStore(store, cfg.RateLimit), nil
}

func newStore(ctx context.Context, cfg StoreConfig) (blobstore.BlobStore, error) {
	switch cfg.Kind {
	case storeLocal:
		return blobstore.NewLocalStore(cfg.Path), nil
	case storeMemory:
		return blobstore.NewMemoryStore(), nil
	case storeS3:
		store, err := s3.New(ctx, cfg.Bucket,
			s3.WithPrefix(cfg.Prefix),
			s3.WithRegion(cfg.Region),
			s3.WithEndpoint(cfg.Endpoint),
		)
		if err != nil {
			return nil, err
		}
		return store, nil
	case storeMinio:
		store, err := minio.Dial(minio.Config{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			UseSSL:    cfg.UseSSL,
			Region:    cfg.Region,
			Bucket:    cfg.Bucket,
			Prefix:    cfg.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store kind %q", cfg.Kind)
	}
}
