package conv

import "fmt"

// RGBToPoints promotes packed RGB triples to 3-dimensional points.
// All points share one backing array.
func RGBToPoints(rgb []byte) ([][]float64, error) {
	if len(rgb)%3 != 0 {
		return nil, fmt.Errorf("rgb length %d is not a multiple of 3", len(rgb))
	}

	n := len(rgb) / 3
	data := make([]float64, len(rgb))
	points := make([][]float64, n)
	for i := range n {
		p := data[i*3 : i*3+3 : i*3+3]
		p[0] = float64(rgb[i*3])
		p[1] = float64(rgb[i*3+1])
		p[2] = float64(rgb[i*3+2])
		points[i] = p
	}
	return points, nil
}

// PointsToRGB packs the first three components of every point into bytes
// with Float64ToUint8. Points with fewer than three components are rejected.
func PointsToRGB(points [][]float64) ([]byte, error) {
	out := make([]byte, 0, len(points)*3)
	for i, p := range points {
		if len(p) < 3 {
			return nil, fmt.Errorf("point %d has %d components, need 3", i, len(p))
		}
		out = append(out, Float64ToUint8(p[0]), Float64ToUint8(p[1]), Float64ToUint8(p[2]))
	}
	return out, nil
}
