package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBToPoints(t *testing.T) {
	points, err := RGBToPoints([]byte{0, 0, 0, 255, 128, 1})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0, 0}, {255, 128, 1}}, points)

	// Appending to one point must not clobber the next.
	_ = append(points[0], 9)
	assert.Equal(t, []float64{255, 128, 1}, points[1])

	_, err = RGBToPoints([]byte{1, 2})
	assert.Error(t, err)

	points, err = RGBToPoints(nil)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestPointsToRGB(t *testing.T) {
	rgb, err := PointsToRGB([][]float64{{0.9, 127.5, 254.99}, {255, 300, -1}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 127, 254, 255, 255, 0}, rgb)

	_, err = PointsToRGB([][]float64{{1, 2}})
	assert.Error(t, err)
}
