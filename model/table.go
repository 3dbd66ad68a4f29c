package model

// TableRegion is a detected rectangular arrangement of clusters across
// multiple lines: a header line followed by one or more data lines whose
// columns align with the header's. Regions are derived per page and carry
// no persistent identity.
type TableRegion struct {
	// Headers are the column header texts, left to right.
	Headers []string

	// Rows are the data rows; each row has exactly ColumnCount cells,
	// with "" for columns that had no aligned cluster.
	Rows [][]string

	// RowCount is the number of data rows (the header line is not counted).
	RowCount int

	// ColumnCount is the number of columns.
	ColumnCount int

	// BBox is the bounding box covering the absorbed lines.
	BBox BBox

	// FirstLine and LastLine are the page line indices (inclusive) that the
	// region absorbed, header included. Absorbed lines are excluded from the
	// plain label:value serialization.
	FirstLine, LastLine int
}

// Cell returns the cell text at (row, col), or "" if out of range.
func (t *TableRegion) Cell(row, col int) string {
	if t == nil || row < 0 || row >= len(t.Rows) {
		return ""
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// SpacingStats summarizes the horizontal gaps between adjacent words across
// all lines of a page. The clustering and classification stages use these
// statistics to calibrate their thresholds per document instead of relying
// on fixed pixel constants.
type SpacingStats struct {
	// AvgSpacing is the mean gap between horizontally adjacent words.
	AvgSpacing float64

	// MedianSpacing is the median gap.
	MedianSpacing float64

	// SpacingStd is the population standard deviation of gaps.
	SpacingStd float64

	// SampleCount is the number of gaps the statistics were computed from.
	// Zero means the page had no adjacent word pairs.
	SampleCount int
}
