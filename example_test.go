package hkmeans_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/hkmeans"
	"github.com/hupe1980/hkmeans/blobstore"
	"github.com/hupe1980/hkmeans/codebook"
)

// ExampleCluster clusters four points into two pairs.
func ExampleCluster() {
	points := [][]float64{{0, 0}, {0, 1}, {10, 0}, {10, 1}}

	res, err := hkmeans.Cluster(context.Background(), points, 2, 100, hkmeans.WithSampler(seeds{0, 2}))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Sizes())
	fmt.Println(res.Assignments[0] == res.Assignments[1], res.Assignments[2] == res.Assignments[3])
	// Output:
	// [2 2]
	// true true
}

// ExampleQuantizeRGB reduces six pixels to a two-color palette.
func ExampleQuantizeRGB() {
	rgb := []byte{
		250, 0, 0,
		255, 0, 0,
		252, 3, 1,
		0, 0, 250,
		0, 2, 255,
		1, 0, 251,
	}

	palette, err := hkmeans.QuantizeRGB(context.Background(), rgb, 2, 50, hkmeans.WithSampler(seeds{0, 3}))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(palette)
	// Output: [252 1 0 0 0 252]
}

// ExampleResult_Test classifies a new point against trained centroids.
func ExampleResult_Test() {
	points := [][]float64{{0, 0}, {0, 1}, {10, 0}, {10, 1}}

	res, err := hkmeans.Cluster(context.Background(), points, 2, 100, hkmeans.WithSampler(seeds{0, 2}))
	if err != nil {
		log.Fatal(err)
	}

	a, _ := res.Test([]float64{9, 9}, nil)
	b, _ := res.Test([]float64{10, 0.5}, nil)
	fmt.Println(a == b)
	// Output: true
}

// ExampleResult_Codebook persists trained centroids and loads them again.
func ExampleResult_Codebook() {
	ctx := context.Background()
	points := [][]float64{{0, 0}, {0, 1}, {10, 0}, {10, 1}}

	res, err := hkmeans.Cluster(ctx, points, 2, 100, hkmeans.WithSampler(seeds{0, 2}))
	if err != nil {
		log.Fatal(err)
	}

	store := blobstore.NewMemoryStore()
	if err := codebook.Save(ctx, store, "pairs.hkcb", res.Codebook(), codebook.WithCompression(codebook.CompressionZSTD)); err != nil {
		log.Fatal(err)
	}

	cb, err := codebook.Load(ctx, store, "pairs.hkcb")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(cb.K, cb.Dim)
	// Output: 2 2
}

// seeds is a sampler that always picks the same point indices.
type seeds []int

func (s seeds) Sample(_, _ int) ([]int, error) {
	return s, nil
}
