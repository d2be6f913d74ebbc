package bench

import (
	"math"
	"sort"
)

// summarize discards samples outside the [Q1-1.5*IQR, Q3+1.5*IQR] fences and
// returns the mean, population standard deviation and surviving sample count.
func summarize(samples []float64) (avg, stddev float64, n int) {
	if len(samples) == 0 {
		return 0, 0, 0
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	q1 := quartile(sorted, 0.25)
	q3 := quartile(sorted, 0.75)
	iqr := q3 - q1
	lo, hi := q1-1.5*iqr, q3+1.5*iqr

	kept := sorted[:0]
	for _, v := range sorted {
		if v >= lo && v <= hi {
			kept = append(kept, v)
		}
	}

	var sum float64
	for _, v := range kept {
		sum += v
	}
	avg = sum / float64(len(kept))

	var variance float64
	for _, v := range kept {
		variance += (v - avg) * (v - avg)
	}
	stddev = math.Sqrt(variance / float64(len(kept)))

	return avg, stddev, len(kept)
}

// quartile returns the q-th quantile of sorted data with linear interpolation
// between adjacent ranks.
func quartile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	i := int(pos)
	frac := pos - float64(i)

	if i+1 < len(sorted) {
		return sorted[i]*(1-frac) + sorted[i+1]*frac
	}
	return sorted[i]
}
