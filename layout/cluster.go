package layout

import (
	"strings"

	"github.com/docfield/spatial/model"
)

// Role is the semantic role assigned to a cluster by the field classifier.
// It is derived state, not part of the cluster's identity.
type Role int

const (
	RoleUnknown Role = iota
	RoleLabel
	RoleValue
)

// String returns a string representation of the role.
func (r Role) String() string {
	switch r {
	case RoleLabel:
		return "label"
	case RoleValue:
		return "value"
	default:
		return "unknown"
	}
}

// Cluster is a horizontally contiguous run of words within one line,
// grouped because the gaps between consecutive members fall below the
// clustering threshold.
type Cluster struct {
	// Words are the member word boxes in left-to-right order.
	Words []model.WordBox

	// Role is the semantic role assigned by classification.
	Role Role
}

// Text returns the cluster's words joined with single spaces.
func (c *Cluster) Text() string {
	if c == nil || len(c.Words) == 0 {
		return ""
	}
	parts := make([]string, len(c.Words))
	for i, w := range c.Words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

// BBox returns the bounding box covering all words in the cluster.
func (c *Cluster) BBox() model.BBox {
	if c == nil || len(c.Words) == 0 {
		return model.BBox{}
	}
	box := c.Words[0].Box
	for _, w := range c.Words[1:] {
		box = box.Union(w.Box)
	}
	return box
}

// X0 returns the cluster's left edge.
func (c *Cluster) X0() float64 { return c.BBox().Left() }

// CenterX returns the cluster's horizontal center.
func (c *Cluster) CenterX() float64 { return c.BBox().Center().X }

// WordCount returns the number of words in the cluster.
func (c *Cluster) WordCount() int {
	if c == nil {
		return 0
	}
	return len(c.Words)
}

// ClusterConfig holds configuration for proximity clustering.
type ClusterConfig struct {
	// GapMultiplier is the number of standard deviations above the median
	// gap at which a gap becomes a cluster boundary (default: 1.75).
	GapMultiplier float64

	// MinAbsoluteGap is a hard floor: any gap at least this wide is a
	// boundary even when the gap statistics say otherwise. It catches
	// sparse lines where statistics are unreliable (default: 18.0).
	MinAbsoluteGap float64

	// MinLineWordsForStats is the minimum number of words a line needs
	// before its own gap distribution is trusted; shorter lines fall back
	// to the page-wide statistics (default: 4).
	MinLineWordsForStats int
}

// DefaultClusterConfig returns sensible default configuration.
func DefaultClusterConfig() ClusterConfig {
	return ClusterConfig{
		GapMultiplier:        1.75,
		MinAbsoluteGap:       18.0,
		MinLineWordsForStats: 4,
	}
}

// ProximityClusterer partitions a line's words into clusters by horizontal
// gap analysis.
type ProximityClusterer struct {
	config ClusterConfig
}

// NewProximityClusterer creates a clusterer with default configuration.
func NewProximityClusterer() *ProximityClusterer {
	return &ProximityClusterer{config: DefaultClusterConfig()}
}

// NewProximityClustererWithConfig creates a clusterer with custom configuration.
func NewProximityClustererWithConfig(config ClusterConfig) *ProximityClusterer {
	return &ProximityClusterer{config: config}
}

// ClusterLine partitions the line's words into ordered clusters. Every word
// of the line appears in exactly one cluster; a line of N words yields
// between 1 and N clusters. pageStats supplies the page-wide gap
// distribution used when the line is too short to estimate its own.
func (p *ProximityClusterer) ClusterLine(line Line, pageStats model.SpacingStats) []Cluster {
	if len(line.Words) == 0 {
		return nil
	}
	if len(line.Words) == 1 {
		return []Cluster{{Words: line.Words}}
	}

	gaps := lineGaps(line.Words)
	threshold := p.statThreshold(gaps, pageStats)

	var clusters []Cluster
	current := []model.WordBox{line.Words[0]}

	for i, gap := range gaps {
		if p.isBoundary(gap, threshold) {
			clusters = append(clusters, Cluster{Words: current})
			current = []model.WordBox{line.Words[i+1]}
		} else {
			current = append(current, line.Words[i+1])
		}
	}
	clusters = append(clusters, Cluster{Words: current})

	return clusters
}

// isBoundary reports whether a gap separates two clusters. A gap is a
// boundary when it is a statistical outlier for the line, or when it
// exceeds the hard minimum regardless of statistics.
func (p *ProximityClusterer) isBoundary(gap, statThreshold float64) bool {
	if gap >= p.config.MinAbsoluteGap {
		return true
	}
	return statThreshold > 0 && gap > statThreshold
}

// statThreshold derives the statistical split threshold: median + k*std of
// the line's own gaps when the line is long enough, the page-wide gap
// statistics otherwise. Returns 0 when no statistics are available, which
// disables the statistical test and leaves only the absolute gap floor.
func (p *ProximityClusterer) statThreshold(gaps []float64, pageStats model.SpacingStats) float64 {
	if len(gaps)+1 >= p.config.MinLineWordsForStats && len(gaps) >= 2 {
		return median(gaps) + p.config.GapMultiplier*stdDev(gaps)
	}
	if pageStats.SampleCount > 0 {
		return pageStats.MedianSpacing + p.config.GapMultiplier*pageStats.SpacingStd
	}
	return 0
}

// lineGaps returns the horizontal gap before each word after the first.
// Overlapping neighbors produce negative raw gaps, which are clamped to 0.
func lineGaps(words []model.WordBox) []float64 {
	gaps := make([]float64, len(words)-1)
	for i := 0; i < len(words)-1; i++ {
		gap := words[i+1].X0() - words[i].X1()
		if gap < 0 {
			gap = 0
		}
		gaps[i] = gap
	}
	return gaps
}
