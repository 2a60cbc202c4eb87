package hkmeans

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// maxPaletteColors is the largest palette an image.Paletted can index.
const maxPaletteColors = 256

// QuantizeImage reduces img to k colors. Every pixel is mapped to the
// truncated color of its cluster centroid. Alpha is discarded and the
// palette colors are opaque.
func QuantizeImage(ctx context.Context, img image.Image, k, maxIter int, opts ...Option) (*image.Paletted, error) {
	o := applyOptions(opts)
	if k > maxPaletteColors {
		return nil, fmt.Errorf("%w: an image palette holds at most %d colors", ErrInvalidK, maxPaletteColors)
	}

	rgb := ImageRGB(img)

	res, err := clusterRGB(ctx, rgb, k, maxIter, o)
	if err != nil {
		o.logger.LogQuantize(ctx, len(rgb)/3, k, err)
		return nil, err
	}

	dst, err := res.Paletted(img.Bounds())
	if err != nil {
		return nil, err
	}

	o.logger.LogQuantize(ctx, len(rgb)/3, len(dst.Palette), nil)
	return dst, nil
}

// ImageRGB returns the pixels of img in row-major order as packed RGB,
// ready for ClusterRGB.
func ImageRGB(img image.Image) []byte {
	bounds := img.Bounds()

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()
	rgb := make([]byte, 0, w*h*3)
	for y := 0; y < h; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+4*w]
		for x := 0; x < w; x++ {
			rgb = append(rgb, row[4*x], row[4*x+1], row[4*x+2])
		}
	}
	return rgb
}

// Paletted renders the result of ClusterRGB(ImageRGB(img)) as a paletted
// image with the given bounds.
func (r *Result) Paletted(bounds image.Rectangle) (*image.Paletted, error) {
	if r.Dimension() != 3 && len(r.Centroids) > 0 {
		return nil, fmt.Errorf("paletted image needs rgb centroids, got dimension %d", r.Dimension())
	}
	if len(r.Centroids) > maxPaletteColors {
		return nil, fmt.Errorf("%w: an image palette holds at most %d colors", ErrInvalidK, maxPaletteColors)
	}
	w, h := bounds.Dx(), bounds.Dy()
	if len(r.Assignments) != w*h {
		return nil, fmt.Errorf("bounds hold %d pixels, result has %d", w*h, len(r.Assignments))
	}

	packed := r.PaletteRGB()
	palette := make(color.Palette, len(packed)/3)
	for j := range palette {
		palette[j] = color.RGBA{R: packed[3*j], G: packed[3*j+1], B: packed[3*j+2], A: 0xff}
	}

	dst := image.NewPaletted(bounds, palette)
	for y := 0; y < h; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x := range row {
			row[x] = uint8(r.Assignments[y*w+x])
		}
	}
	return dst, nil
}
