package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramMoments(t *testing.T) {
	t.Parallel()
	h := Histogram{}
	for _, v := range []int{1, 1, 2, 3, 3} {
		h.Add(v)
	}

	assert.Equal(t, 5, h.Count())
	assert.InDelta(t, 2.0, h.Mean(), 1e-9)
	assert.InDelta(t, 1.0, h.Variance(), 1e-9)
	assert.InDelta(t, 1.0, h.StdDev(), 1e-9)

	lo, hi := h.ConfidenceInterval95()
	assert.Less(t, lo, 2.0)
	assert.Greater(t, hi, 2.0)
	assert.InDelta(t, hi-2.0, 2.0-lo, 1e-9)
}

func TestHistogramEmpty(t *testing.T) {
	t.Parallel()
	h := Histogram{}
	assert.Zero(t, h.Mean())
	assert.Zero(t, h.Variance())
	assert.Zero(t, h.StdError())
	assert.Zero(t, h.Median())
}

func TestHistogramPercentile(t *testing.T) {
	t.Parallel()
	h := Histogram{1: 6, 2: 3, 13: 1}

	assert.Equal(t, 1, h.Median())
	assert.Equal(t, 1, h.Percentile(0))
	assert.Equal(t, 2, h.Percentile(0.9))
	assert.Equal(t, 13, h.Percentile(1))
	assert.Equal(t, 13, h.Percentile(2))
}

func TestHistogramMerge(t *testing.T) {
	t.Parallel()
	a := Histogram{1: 2, 2: 1}
	a.Merge(Histogram{2: 3, 6: 1})
	assert.Equal(t, Histogram{1: 2, 2: 4, 6: 1}, a)
	require.NoError(t, a.Validate())

	assert.Error(t, Histogram{1: -1}.Validate())
}

func TestWilsonInterval95(t *testing.T) {
	t.Parallel()

	lo, hi := WilsonInterval95(50, 100)
	assert.InDelta(t, 0.404, lo, 0.001)
	assert.InDelta(t, 0.596, hi, 0.001)

	lo, hi = WilsonInterval95(0, 1000)
	assert.InDelta(t, 0, lo, 1e-12)
	assert.Greater(t, hi, 0.0)
	assert.Less(t, hi, 0.01)

	lo, hi = WilsonInterval95(0, 0)
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}
