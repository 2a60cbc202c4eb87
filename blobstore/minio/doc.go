// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. This package
// uses the official MinIO Go client library for optimal compatibility with MinIO
// and other S3-compatible storage systems like Ceph, SeaweedFS, and Garage.
//
// # Basic Usage
//
//	store, err := minioblob.Dial(minioblob.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	    Bucket:    "my-bucket",
//	    Prefix:    "codebooks/",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = codebook.Save(ctx, store, "sunset.hkcb", cb)
//
// An existing *minio.Client can be used with NewStore.
package minio
