package tables

import (
	"math"
	"strings"
	"unicode"

	"github.com/docfield/spatial/layout"
	"github.com/docfield/spatial/model"
)

// Config holds detector configuration.
type Config struct {
	// AlignmentTolerance is the maximum distance between a cluster's left
	// edge and a header column's left edge for the cluster to belong to
	// that column (default: 12.0). Looser than the field classifier's
	// tolerance: column cells wobble more than single values.
	AlignmentTolerance float64

	// MinRows is the minimum number of data rows for a valid table
	// (default: 1, the header is not counted).
	MinRows int

	// MinCols is the minimum number of columns for a valid table
	// (default: 3). Two aligned columns are indistinguishable from a run
	// of label:value lines, which the field classifier handles better.
	MinCols int

	// MaxHeaderWords is the maximum word count for a cluster to qualify
	// as a column header (default: 4).
	MaxHeaderWords int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		AlignmentTolerance: 12.0,
		MinRows:            1,
		MinCols:            3,
		MaxHeaderWords:     4,
	}
}

// Detector finds table regions by column alignment across lines.
type Detector struct {
	config Config
}

// NewDetector creates a detector with default configuration.
func NewDetector() *Detector {
	return &Detector{config: DefaultConfig()}
}

// NewDetectorWithConfig creates a detector with custom configuration.
func NewDetectorWithConfig(config Config) *Detector {
	return &Detector{config: config}
}

// Detect scans the page for table regions. lines and clusters must be
// parallel (clusters[i] belongs to lines[i]). It returns the detected
// regions and a per-line mask marking lines absorbed into a region
// (header lines included).
func (d *Detector) Detect(lines []layout.Line, clusters [][]layout.Cluster) ([]model.TableRegion, []bool) {
	absorbed := make([]bool, len(lines))
	var regions []model.TableRegion

	for i := 0; i < len(lines); i++ {
		if !d.isHeaderLine(clusters[i]) {
			continue
		}

		columns := clusterLefts(clusters[i])

		// Absorb consecutive lines whose clusters align to the header columns.
		last := i
		for j := i + 1; j < len(lines); j++ {
			if !d.rowAligns(clusters[j], columns) {
				break
			}
			last = j
		}

		if last-i < d.config.MinRows {
			continue
		}

		region := d.buildRegion(lines, clusters, i, last, columns)
		regions = append(regions, region)
		for j := i; j <= last; j++ {
			absorbed[j] = true
		}
		i = last
	}

	return regions, absorbed
}

// isHeaderLine reports whether a line's clusters read as a table header:
// at least MinCols clusters, each short and free of digits.
func (d *Detector) isHeaderLine(clusters []layout.Cluster) bool {
	if len(clusters) < d.config.MinCols {
		return false
	}
	for i := range clusters {
		cl := &clusters[i]
		if cl.WordCount() > d.config.MaxHeaderWords {
			return false
		}
		if strings.IndexFunc(cl.Text(), unicode.IsDigit) >= 0 {
			return false
		}
	}
	return true
}

// rowAligns reports whether every cluster of a candidate data line sits on
// one of the header columns, and at least MinCols distinct columns are hit.
func (d *Detector) rowAligns(clusters []layout.Cluster, columns []float64) bool {
	if len(clusters) < d.config.MinCols || len(clusters) > len(columns) {
		return false
	}

	hit := make(map[int]bool, len(clusters))
	for i := range clusters {
		col, dist := nearestColumn(clusters[i].X0(), columns)
		if dist > d.config.AlignmentTolerance {
			return false
		}
		hit[col] = true
	}
	return len(hit) >= d.config.MinCols
}

// buildRegion assembles the table region for lines [first, last].
func (d *Detector) buildRegion(lines []layout.Line, clusters [][]layout.Cluster, first, last int, columns []float64) model.TableRegion {
	headers := make([]string, len(clusters[first]))
	for i := range clusters[first] {
		headers[i] = clusters[first][i].Text()
	}

	rows := make([][]string, 0, last-first)
	for j := first + 1; j <= last; j++ {
		row := make([]string, len(columns))
		for k := range clusters[j] {
			cl := &clusters[j][k]
			col, _ := nearestColumn(cl.X0(), columns)
			if row[col] != "" {
				row[col] += " "
			}
			row[col] += cl.Text()
		}
		rows = append(rows, row)
	}

	bbox := lines[first].BBox()
	for j := first + 1; j <= last; j++ {
		bbox = bbox.Union(lines[j].BBox())
	}

	return model.TableRegion{
		Headers:     headers,
		Rows:        rows,
		RowCount:    len(rows),
		ColumnCount: len(columns),
		BBox:        bbox,
		FirstLine:   first,
		LastLine:    last,
	}
}

// clusterLefts returns the left edge of each cluster, in order.
func clusterLefts(clusters []layout.Cluster) []float64 {
	lefts := make([]float64, len(clusters))
	for i := range clusters {
		lefts[i] = clusters[i].X0()
	}
	return lefts
}

// nearestColumn returns the index and distance of the column closest to x.
func nearestColumn(x float64, columns []float64) (int, float64) {
	best := 0
	bestDist := math.Abs(x - columns[0])
	for i := 1; i < len(columns); i++ {
		if dist := math.Abs(x - columns[i]); dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best, bestDist
}
