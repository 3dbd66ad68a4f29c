package spatial

// Option adjusts a single knob of the pipeline configuration.
type Option func(*Config)

// WithVerticalTolerance sets the maximum vertical-center distance, in page
// units, for a word to join an existing line.
func WithVerticalTolerance(tolerance float64) Option {
	return func(c *Config) {
		c.Line.VerticalTolerance = tolerance
		c.Line.UseMedianHeight = false
	}
}

// WithMedianHeightTolerance derives the line-grouping tolerance from the
// median word height instead of a fixed value: tolerance = ratio * median
// height. Useful for documents at unusual scales.
func WithMedianHeightTolerance(ratio float64) Option {
	return func(c *Config) {
		c.Line.UseMedianHeight = true
		c.Line.HeightToleranceRatio = ratio
	}
}

// WithGapMultiplier sets k in the adaptive cluster-boundary rule:
// a gap splits a line when it exceeds median + k*std of the gap
// distribution.
func WithGapMultiplier(k float64) Option {
	return func(c *Config) {
		c.Cluster.GapMultiplier = k
	}
}

// WithMinAbsoluteGap sets the hard gap floor: any gap at least this wide
// is a cluster boundary regardless of the gap statistics.
func WithMinAbsoluteGap(gap float64) Option {
	return func(c *Config) {
		c.Cluster.MinAbsoluteGap = gap
	}
}

// WithAlignmentTolerance sets the horizontal slack used when matching a
// next-line value cluster to a label's x-range.
func WithAlignmentTolerance(tolerance float64) Option {
	return func(c *Config) {
		c.Fields.AlignmentTolerance = tolerance
	}
}

// WithTableAlignmentTolerance sets the column-alignment slack for table
// detection.
func WithTableAlignmentTolerance(tolerance float64) Option {
	return func(c *Config) {
		c.Tables.AlignmentTolerance = tolerance
	}
}

// WithLexicon adds label phrases to the classifier's built-in lexicon.
func WithLexicon(entries ...string) Option {
	return func(c *Config) {
		c.Fields.Lexicon = append(c.Fields.Lexicon, entries...)
	}
}

// WithFieldSeparator sets the delimiter between fields that share a
// physical line.
func WithFieldSeparator(sep string) Option {
	return func(c *Config) {
		c.Serialize.FieldSeparator = sep
	}
}

// WithEmptySentinel sets the marker rendered for labels with no
// resolvable value.
func WithEmptySentinel(sentinel string) Option {
	return func(c *Config) {
		c.Serialize.EmptySentinel = sentinel
	}
}
