// Package hkmeans provides k-means clustering accelerated with Hamerly's
// triangle-inequality bounds, plus RGB color quantization built on top of it.
//
// Hamerly's algorithm keeps one upper bound (distance to the assigned
// centroid) and one lower bound (distance to the second closest centroid)
// per point. Most points are skipped without computing any distance once
// the clustering starts to settle. The result is identical to Lloyd's
// algorithm started from the same centroids.
//
// # Quick Start
//
//	ctx := context.Background()
//	res, err := hkmeans.Cluster(ctx, points, 8, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Centroids, res.Assignments)
//
// Classify a new point against the trained centroids:
//
//	j, err := res.Test([]float64{0.3, 0.7}, nil) // nil selects Euclidean distance
//
// # Color Quantization
//
// Pixels are clustered as 3-dimensional points. Palette entries are the
// centroids truncated to bytes:
//
//	palette, _ := hkmeans.QuantizeRGB(ctx, rgb, 16, 50)      // 16*3 bytes
//	paletted, _ := hkmeans.QuantizeImage(ctx, img, 16, 50)   // *image.Paletted
//
// # Initialization
//
// Initial centroids are k distinct input points. By default they are chosen
// with a seeded sampler (seed 0), so runs are reproducible. Use WithSeed for
// another seed or WithSampler(sampler.Platform{}) for a fresh random choice:
//
//	res, _ := hkmeans.Cluster(ctx, points, 8, 100, hkmeans.WithSeed(42))
//
// # Convergence
//
// A run stops after maxIter iterations or as soon as the total squared
// movement of all centroids in an iteration is zero or below the threshold
// set with WithConvergenceThreshold. Result.Iterations counts completed
// iterations that did not converge.
//
// # Concurrency
//
// WithWorkers splits the per-point passes across goroutines. Results do not
// depend on the worker count except for floating point summation order.
// A clustering run is not cancellable mid-iteration but honors ctx between
// passes.
//
// # Persistence
//
// Result.Codebook converts the centroids into a codebook.Codebook that can
// be encoded with a choice of codec and compression and stored in any
// blobstore.BlobStore (local, in-memory, S3 or MinIO):
//
//	store := blobstore.NewLocalStore("./palettes")
//	_ = codebook.Save(ctx, store, "sunset.hkcb", res.Codebook(),
//	    codebook.WithCompression(codebook.CompressionZSTD))
//
// # Observability
//
// WithLogger enables structured logging via log/slog. Iteration details are
// logged at debug level. WithMetricsCollector receives per-run and
// per-iteration counters, including how many points the bounds pruned:
//
//	metrics := &hkmeans.BasicMetricsCollector{}
//	res, _ := hkmeans.Cluster(ctx, points, 8, 100, hkmeans.WithMetricsCollector(metrics))
//	fmt.Printf("prune rate: %.2f\n", metrics.GetStats().PruneRate())
package hkmeans
