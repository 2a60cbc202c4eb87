// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("codebooks/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	err = codebook.Save(ctx, store, "sunset.hkcb", cb)
//
// # Features
//
//   - Range reads for efficient partial fetches
//   - Multipart uploads with CRC32C checksums for large codebooks
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//   - Custom endpoints (LocalStack, S3-compatible gateways)
package s3
