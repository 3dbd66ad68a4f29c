package layout

import (
	"sort"
	"strings"

	"github.com/docfield/spatial/model"
)

// Line represents a single visual line: words sharing an approximate
// vertical band, ordered left to right.
type Line struct {
	// Words are the member word boxes, sorted by X0 ascending.
	Words []model.WordBox

	// CenterY is the line's reference vertical center (mean of member
	// centers). Lines on a page are sorted by CenterY ascending.
	CenterY float64

	// Index is the line's position on the page (0-based, top to bottom).
	Index int
}

// Text returns the line's words joined with single spaces.
func (l *Line) Text() string {
	if l == nil || len(l.Words) == 0 {
		return ""
	}
	parts := make([]string, len(l.Words))
	for i, w := range l.Words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

// BBox returns the bounding box covering all words in the line.
func (l *Line) BBox() model.BBox {
	if l == nil || len(l.Words) == 0 {
		return model.BBox{}
	}
	box := l.Words[0].Box
	for _, w := range l.Words[1:] {
		box = box.Union(w.Box)
	}
	return box
}

// LineConfig holds configuration for line grouping.
type LineConfig struct {
	// VerticalTolerance is the maximum distance between a word's vertical
	// center and the line's running center for the word to join the line,
	// in page units (default: 6.0).
	VerticalTolerance float64

	// UseMedianHeight switches the tolerance to a fraction of the median
	// word height instead of the fixed VerticalTolerance. Useful for pages
	// at unusual scales (default: false).
	UseMedianHeight bool

	// HeightToleranceRatio is the fraction of the median word height used
	// when UseMedianHeight is set (default: 0.5).
	HeightToleranceRatio float64
}

// DefaultLineConfig returns sensible default configuration.
func DefaultLineConfig() LineConfig {
	return LineConfig{
		VerticalTolerance:    6.0,
		UseMedianHeight:      false,
		HeightToleranceRatio: 0.5,
	}
}

// LineDetector partitions word boxes into visual lines.
type LineDetector struct {
	config LineConfig
}

// NewLineDetector creates a line detector with default configuration.
func NewLineDetector() *LineDetector {
	return &LineDetector{config: DefaultLineConfig()}
}

// NewLineDetectorWithConfig creates a line detector with custom configuration.
func NewLineDetectorWithConfig(config LineConfig) *LineDetector {
	return &LineDetector{config: config}
}

// GroupWords partitions word boxes into ordered visual lines. The result is
// independent of the input order: words are sorted internally by
// (centerY, x0, x1, text) before grouping. A stray word far from all others
// becomes a singleton line; empty input yields nil.
func (d *LineDetector) GroupWords(words []model.WordBox) []Line {
	if len(words) == 0 {
		return nil
	}

	tolerance := d.tolerance(words)

	sorted := make([]model.WordBox, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.CenterY() != b.CenterY() {
			return a.CenterY() < b.CenterY()
		}
		if a.X0() != b.X0() {
			return a.X0() < b.X0()
		}
		if a.X1() != b.X1() {
			return a.X1() < b.X1()
		}
		return a.Text < b.Text
	})

	var lines []Line
	current := []model.WordBox{sorted[0]}
	centerSum := sorted[0].CenterY()

	for _, w := range sorted[1:] {
		// Compare against the running average of the current line so a
		// slowly drifting baseline doesn't split one visual line in two.
		avg := centerSum / float64(len(current))
		if absFloat64(w.CenterY()-avg) <= tolerance {
			current = append(current, w)
			centerSum += w.CenterY()
		} else {
			lines = append(lines, d.buildLine(current, centerSum))
			current = []model.WordBox{w}
			centerSum = w.CenterY()
		}
	}
	lines = append(lines, d.buildLine(current, centerSum))

	for i := range lines {
		lines[i].Index = i
	}

	return lines
}

// buildLine finalizes a line group: members are re-sorted by X0 to guarantee
// left-to-right reading order regardless of how they joined the line.
func (d *LineDetector) buildLine(words []model.WordBox, centerSum float64) Line {
	sort.Slice(words, func(i, j int) bool {
		if words[i].X0() != words[j].X0() {
			return words[i].X0() < words[j].X0()
		}
		if words[i].X1() != words[j].X1() {
			return words[i].X1() < words[j].X1()
		}
		return words[i].Text < words[j].Text
	})
	return Line{
		Words:   words,
		CenterY: centerSum / float64(len(words)),
	}
}

// tolerance returns the effective vertical tolerance for this word set.
func (d *LineDetector) tolerance(words []model.WordBox) float64 {
	if !d.config.UseMedianHeight {
		return d.config.VerticalTolerance
	}

	heights := make([]float64, len(words))
	for i, w := range words {
		heights[i] = w.Height()
	}
	tol := median(heights) * d.config.HeightToleranceRatio
	if tol < 2.0 {
		tol = 2.0 // Floor for degenerate box heights
	}
	return tol
}

func absFloat64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
