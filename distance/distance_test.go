package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 27},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 8}, // (1 - -1)^2 + (-1 - 1)^2 = 4 + 4 = 8
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredL2(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestL2(t *testing.T) {
	assert.Equal(t, 5.0, L2([]float64{0, 0}, []float64{3, 4}))
	assert.Equal(t, 0.0, L2([]float64{7, 7}, []float64{7, 7}))

	// L2 must agree exactly with the square root of SquaredL2.
	a := []float64{0.1, 0.7, 12.25}
	b := []float64{3.3, -0.4, 1}
	assert.Equal(t, math.Sqrt(SquaredL2(a, b)), L2(a, b))
}

func TestMinkowskiFamily(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 0, 3}

	assert.InDelta(t, 5.0, Manhattan(a, b), 1e-12)
	assert.InDelta(t, 3.0, Chebyshev(a, b), 1e-12)
	assert.InDelta(t, L2(a, b), Minkowski(2)(a, b), 1e-12)
	assert.InDelta(t, Manhattan(a, b), Minkowski(1)(a, b), 1e-12)
}

func TestMetric(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "L2", MetricL2.String())
		assert.Equal(t, "SquaredL2", MetricSquaredL2.String())
		assert.Equal(t, "Manhattan", MetricManhattan.String())
		assert.Equal(t, "Chebyshev", MetricChebyshev.String())
		assert.Equal(t, "Unknown(99)", Metric(99).String())
	})

	t.Run("Parse", func(t *testing.T) {
		m, err := ParseMetric("Manhattan")
		require.NoError(t, err)
		assert.Equal(t, MetricManhattan, m)

		_, err = ParseMetric("cosine")
		assert.Error(t, err)
	})

	t.Run("Provider", func(t *testing.T) {
		f, err := Provider(MetricL2)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(27), f([]float64{1, 2, 3}, []float64{4, 5, 6}), 1e-12)

		f, err = Provider(MetricSquaredL2)
		require.NoError(t, err)
		assert.InDelta(t, 27.0, f([]float64{1, 2, 3}, []float64{4, 5, 6}), 1e-12)

		f, err = Provider(MetricChebyshev)
		require.NoError(t, err)
		assert.NotNil(t, f)

		_, err = Provider(Metric(99))
		assert.Error(t, err)
	})
}
