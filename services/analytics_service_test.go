package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricTrend(t *testing.T) {
	t.Run("empty series", func(t *testing.T) {
		got := metricTrend(nil, 0.5)
		assert.Equal(t, "no_data", got.Trend)
	})

	t.Run("downward trend", func(t *testing.T) {
		got := metricTrend([]float64{25.0, 24.2, 23.1}, 0.5)
		assert.Equal(t, "down", got.Trend)
		assert.Equal(t, 25.0, got.First)
		assert.Equal(t, 23.1, got.Latest)
		assert.InDelta(t, -1.9, got.Change, 1e-9)
		assert.InDelta(t, 24.1, got.Average, 1e-9)
	})

	t.Run("noise within threshold reads as stable", func(t *testing.T) {
		got := metricTrend([]float64{24.0, 24.6, 24.4}, 0.5)
		assert.Equal(t, "stable", got.Trend)
	})

	t.Run("upward trend", func(t *testing.T) {
		got := metricTrend([]float64{70.0, 71.5}, 0.5)
		assert.Equal(t, "up", got.Trend)
	})
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, mean(nil))
	assert.Equal(t, 2.0, mean([]float64{1, 2, 3}))
}
