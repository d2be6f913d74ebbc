package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		avg, dev, n := summarize(nil)
		assert.Equal(t, 0.0, avg)
		assert.Equal(t, 0.0, dev)
		assert.Equal(t, 0, n)
	})

	t.Run("uniform", func(t *testing.T) {
		avg, dev, n := summarize([]float64{5, 5, 5, 5})
		assert.Equal(t, 5.0, avg)
		assert.Equal(t, 0.0, dev)
		assert.Equal(t, 4, n)
	})

	t.Run("outlier discarded", func(t *testing.T) {
		samples := []float64{10, 11, 9, 10, 12, 10, 11, 9, 10, 1000}

		avg, _, n := summarize(samples)
		assert.Equal(t, 9, n)
		assert.InDelta(t, 10.22, avg, 0.01)
	})

	t.Run("input left intact", func(t *testing.T) {
		samples := []float64{3, 1, 2}
		summarize(samples)
		assert.Equal(t, []float64{3, 1, 2}, samples)
	})

	t.Run("known deviation", func(t *testing.T) {
		// mean 4, population variance ((2^2)*2+(0)*2)/4 = 2
		avg, dev, n := summarize([]float64{2, 4, 4, 6})
		require.Equal(t, 4, n)
		assert.Equal(t, 4.0, avg)
		assert.InDelta(t, 1.4142, dev, 1e-3)
	})
}

func TestQuartile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		name string
		q    float64
		want float64
	}{
		{"min", 0, 1},
		{"first quartile", 0.25, 2},
		{"median", 0.5, 3},
		{"third quartile", 0.75, 4},
		{"max", 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, quartile(sorted, tt.q))
		})
	}
}

func TestQuartile_Interpolates(t *testing.T) {
	sorted := []float64{0, 10}

	assert.Equal(t, 2.5, quartile(sorted, 0.25))
	assert.Equal(t, 5.0, quartile(sorted, 0.5))
}
