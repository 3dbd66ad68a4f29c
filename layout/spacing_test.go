package layout

import (
	"math"
	"testing"
)

func floatsClose(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPageSpacingStatsEmpty(t *testing.T) {
	stats := PageSpacingStats(nil)
	if stats.SampleCount != 0 {
		t.Errorf("Expected 0 samples, got %d", stats.SampleCount)
	}

	// Singleton lines contribute no gaps.
	stats = PageSpacingStats([]Line{
		makeLine(word("a", 0, 0, 10, 15)),
		makeLine(word("b", 0, 20, 10, 35)),
	})
	if stats.SampleCount != 0 {
		t.Errorf("Expected 0 samples from singleton lines, got %d", stats.SampleCount)
	}
}

func TestPageSpacingStats(t *testing.T) {
	lines := []Line{
		makeLine(
			word("Emp", 100, 100, 130, 115),
			word("Id", 140, 100, 160, 115),
			word("4632", 200, 100, 240, 115),
			word("Status", 300, 100, 350, 115),
		),
		makeLine(
			word("Emp", 100, 160, 130, 175),
			word("Type", 140, 160, 165, 175),
		),
	}

	stats := PageSpacingStats(lines)

	// Gaps are 10, 40, 60 on the first line and 10 on the second.
	if stats.SampleCount != 4 {
		t.Fatalf("Expected 4 samples, got %d", stats.SampleCount)
	}
	if !floatsClose(stats.AvgSpacing, 30) {
		t.Errorf("Expected mean 30, got %f", stats.AvgSpacing)
	}
	if !floatsClose(stats.MedianSpacing, 25) {
		t.Errorf("Expected median 25, got %f", stats.MedianSpacing)
	}
	if !floatsClose(stats.SpacingStd, math.Sqrt(450)) {
		t.Errorf("Expected std %f, got %f", math.Sqrt(450), stats.SpacingStd)
	}
}

func TestMedianOddEven(t *testing.T) {
	if got := median([]float64{3, 1, 2}); got != 2 {
		t.Errorf("Expected median 2, got %f", got)
	}
	if got := median([]float64{4, 1, 3, 2}); got != 2.5 {
		t.Errorf("Expected median 2.5, got %f", got)
	}
	if got := median(nil); got != 0 {
		t.Errorf("Expected median 0 for empty input, got %f", got)
	}
}

func TestStdDev(t *testing.T) {
	// Population standard deviation of {2, 4, 4, 4, 5, 5, 7, 9} is 2.
	got := stdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if !floatsClose(got, 2) {
		t.Errorf("Expected std 2, got %f", got)
	}
	if got := stdDev(nil); got != 0 {
		t.Errorf("Expected std 0 for empty input, got %f", got)
	}
}
