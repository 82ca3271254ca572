// Package statistics summarises survey tallies.
package statistics

import (
	"fmt"
	"math"
	"slices"
)

// z95 is the two-sided 95% normal quantile.
const z95 = 1.96

// Histogram counts occurrences of integer values, such as han totals.
type Histogram map[int]int

// Add records one observation of v.
func (h Histogram) Add(v int) {
	h[v]++
}

// Merge adds every count from o.
func (h Histogram) Merge(o Histogram) {
	for v, n := range o {
		h[v] += n
	}
}

// Count returns the number of observations.
func (h Histogram) Count() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// Mean returns the arithmetic mean, or 0 when empty.
func (h Histogram) Mean() float64 {
	n := h.Count()
	if n == 0 {
		return 0
	}
	sum := 0
	for v, c := range h {
		sum += v * c
	}
	return float64(sum) / float64(n)
}

// Variance returns the sample variance.
func (h Histogram) Variance() float64 {
	n := h.Count()
	if n < 2 {
		return 0
	}
	mean := h.Mean()
	ss := 0.0
	for v, c := range h {
		d := float64(v) - mean
		ss += d * d * float64(c)
	}
	return ss / float64(n-1)
}

// StdDev returns the sample standard deviation.
func (h Histogram) StdDev() float64 {
	return math.Sqrt(h.Variance())
}

// StdError returns the standard error of the mean.
func (h Histogram) StdError() float64 {
	n := h.Count()
	if n == 0 {
		return 0
	}
	return h.StdDev() / math.Sqrt(float64(n))
}

// ConfidenceInterval95 returns the normal-approximation interval for the mean.
func (h Histogram) ConfidenceInterval95() (float64, float64) {
	mean := h.Mean()
	margin := z95 * h.StdError()
	return mean - margin, mean + margin
}

// Percentile returns the nearest-rank value at p in [0, 1].
func (h Histogram) Percentile(p float64) int {
	n := h.Count()
	if n == 0 {
		return 0
	}
	p = min(max(p, 0), 1)
	rank := max(int(math.Ceil(p*float64(n))), 1)

	values := make([]int, 0, len(h))
	for v := range h {
		values = append(values, v)
	}
	slices.Sort(values)

	seen := 0
	for _, v := range values {
		seen += h[v]
		if seen >= rank {
			return v
		}
	}
	return values[len(values)-1]
}

// Median is Percentile(0.5).
func (h Histogram) Median() int {
	return h.Percentile(0.5)
}

// Validate rejects negative counts.
func (h Histogram) Validate() error {
	for v, n := range h {
		if n < 0 {
			return fmt.Errorf("value %d has negative count %d", v, n)
		}
	}
	return nil
}

// WilsonInterval95 returns the Wilson score interval for a proportion of
// successes out of n trials. It stays inside [0, 1] even for rare events.
func WilsonInterval95(successes, n int) (float64, float64) {
	if n <= 0 {
		return 0, 0
	}
	p := float64(successes) / float64(n)
	nf := float64(n)
	z2 := z95 * z95

	centre := (p + z2/(2*nf)) / (1 + z2/nf)
	margin := z95 * math.Sqrt(p*(1-p)/nf+z2/(4*nf*nf)) / (1 + z2/nf)
	return max(centre-margin, 0), min(centre+margin, 1)
}
