package layout

import (
	"math"
	"sort"

	"github.com/docfield/spatial/model"
)

// PageSpacingStats computes page-wide statistics over the horizontal gaps
// between adjacent words on each line. The statistics calibrate the
// clustering and classification thresholds per document, so the same
// configuration works across documents printed at different scales.
func PageSpacingStats(lines []Line) model.SpacingStats {
	var gaps []float64
	for _, line := range lines {
		if len(line.Words) < 2 {
			continue
		}
		gaps = append(gaps, lineGaps(line.Words)...)
	}

	if len(gaps) == 0 {
		return model.SpacingStats{}
	}

	return model.SpacingStats{
		AvgSpacing:    mean(gaps),
		MedianSpacing: median(gaps),
		SpacingStd:    stdDev(gaps),
		SampleCount:   len(gaps),
	}
}

// mean computes the arithmetic mean of a slice of float64 values.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median computes the median of a slice of float64 values.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// stdDev computes the population standard deviation of a slice of float64 values.
func stdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		diff := v - m
		sum += diff * diff
	}
	return math.Sqrt(sum / float64(len(values)))
}
