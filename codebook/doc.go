// Package codebook persists trained centroids so that new points can be
// classified without re-training.
//
// A codebook is encoded with a codec (JSON by default), optionally compressed
// with LZ4 or ZSTD, and framed in a small self-describing binary envelope:
//
//	cb, _ := codebook.New(res.Centroids, res.Iterations)
//	data, _ := codebook.Encode(cb, codebook.WithCompression(codebook.CompressionZSTD))
//	cb2, _ := codebook.Decode(data)
//
// Save and Load do the same through a blobstore.BlobStore.
package codebook
