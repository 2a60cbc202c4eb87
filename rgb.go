package hkmeans

import (
	"context"

	"github.com/hupe1980/hkmeans/internal/conv"
)

// ClusterRGB clusters packed RGB pixels. Each byte triple becomes one
// 3-dimensional point.
func ClusterRGB(ctx context.Context, rgb []byte, k, maxIter int, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	return clusterRGB(ctx, rgb, k, maxIter, o)
}

func clusterRGB(ctx context.Context, rgb []byte, k, maxIter int, o options) (*Result, error) {
	if err := validateParams(k, maxIter, o); err != nil {
		return nil, err
	}
	if len(rgb)%3 != 0 {
		return nil, ErrInvalidRGBLength
	}

	points, err := conv.RGBToPoints(rgb)
	if err != nil {
		return nil, err
	}
	return cluster(ctx, points, k, maxIter, o)
}

// QuantizeRGB reduces packed RGB pixels to a palette of k colors and returns
// it as k*3 bytes. Centroid components are truncated, not rounded.
// Empty input yields an empty palette.
func QuantizeRGB(ctx context.Context, rgb []byte, k, maxIter int, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)

	res, err := clusterRGB(ctx, rgb, k, maxIter, o)
	if err != nil {
		o.logger.LogQuantize(ctx, len(rgb)/3, k, err)
		return nil, err
	}

	palette := res.PaletteRGB()
	o.logger.LogQuantize(ctx, len(rgb)/3, len(palette)/3, nil)
	return palette, nil
}
