// Package spatial reconstructs the visual layout of a document page from
// word bounding boxes and re-serializes it as label:value text that
// language-model prompts can reliably parse.
//
// Basic usage:
//
//	words := []model.WordBox{
//	    model.NewWordBox("Status", 300, 200, 350, 215),
//	    model.NewWordBox("A", 300, 220, 310, 235),
//	}
//	text, err := spatial.New().PreprocessDocument(words)
//
// With options:
//
//	p := spatial.New(
//	    spatial.WithVerticalTolerance(8),
//	    spatial.WithGapMultiplier(2.0),
//	)
//	text, err := p.PreprocessDocument(words)
//
// Structured table data is available separately:
//
//	regions, err := p.IdentifyTableRegions(words)
//
// The pipeline runs four ordered stages over one page's words: line
// grouping, proximity clustering, field/value classification, and
// serialization with table detection. All state is per-invocation; a
// Preprocessor may be used concurrently on different pages. For advanced
// use cases the stage packages (layout, fields, tables, serialize) are
// also available directly.
package spatial

import (
	"fmt"

	"github.com/docfield/spatial/fields"
	"github.com/docfield/spatial/layout"
	"github.com/docfield/spatial/model"
	"github.com/docfield/spatial/serialize"
	"github.com/docfield/spatial/tables"
)

// Config aggregates the configuration of every pipeline stage.
type Config struct {
	Line      layout.LineConfig
	Cluster   layout.ClusterConfig
	Fields    fields.Config
	Tables    tables.Config
	Serialize serialize.Config
}

// DefaultConfig returns the default configuration of every stage.
func DefaultConfig() Config {
	return Config{
		Line:      layout.DefaultLineConfig(),
		Cluster:   layout.DefaultClusterConfig(),
		Fields:    fields.DefaultConfig(),
		Tables:    tables.DefaultConfig(),
		Serialize: serialize.DefaultConfig(),
	}
}

// Preprocessor runs the spatial layout pipeline. It is stateless aside
// from its configuration; concurrent invocations on different pages need
// no coordination.
type Preprocessor struct {
	config     Config
	liner      *layout.LineDetector
	clusterer  *layout.ProximityClusterer
	classifier *fields.Classifier
	detector   *tables.Detector
	serializer *serialize.Serializer
}

// New creates a Preprocessor with default configuration, adjusted by the
// given options.
func New(opts ...Option) *Preprocessor {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return NewWithConfig(config)
}

// NewWithConfig creates a Preprocessor from a fully specified configuration.
func NewWithConfig(config Config) *Preprocessor {
	return &Preprocessor{
		config:     config,
		liner:      layout.NewLineDetectorWithConfig(config.Line),
		clusterer:  layout.NewProximityClustererWithConfig(config.Cluster),
		classifier: fields.NewClassifierWithConfig(config.Fields),
		detector:   tables.NewDetectorWithConfig(config.Tables),
		serializer: serialize.NewSerializerWithConfig(config.Serialize),
	}
}

// PreprocessDocument runs the full pipeline over one page's words and
// returns the formatted label:value text. Empty input yields "". The only
// error condition is malformed input (wrapping [model.ErrInvalidWord]);
// every layout ambiguity is resolved heuristically instead of reported.
func (p *Preprocessor) PreprocessDocument(words []model.WordBox) (string, error) {
	if err := validateWords(words); err != nil {
		return "", err
	}
	if len(words) == 0 {
		return "", nil
	}

	lines, clusters := p.analyze(words)
	regions, absorbed := p.detector.Detect(lines, clusters)
	items := p.classifier.Resolve(lines, clusters, absorbed)

	return p.serializer.Render(items, regions), nil
}

// IdentifyTableRegions runs the pipeline up through table detection and
// returns the structured regions. No regions is an empty result, not an
// error.
func (p *Preprocessor) IdentifyTableRegions(words []model.WordBox) ([]model.TableRegion, error) {
	if err := validateWords(words); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, nil
	}

	lines, clusters := p.analyze(words)
	regions, _ := p.detector.Detect(lines, clusters)
	return regions, nil
}

// WordSpacingStats computes the page-wide horizontal gap statistics used
// to calibrate the clustering thresholds.
func (p *Preprocessor) WordSpacingStats(words []model.WordBox) (model.SpacingStats, error) {
	if err := validateWords(words); err != nil {
		return model.SpacingStats{}, err
	}
	lines := p.liner.GroupWords(words)
	return layout.PageSpacingStats(lines), nil
}

// analyze runs the geometric stages shared by every entry point: line
// grouping, page statistics, and per-line clustering.
func (p *Preprocessor) analyze(words []model.WordBox) ([]layout.Line, [][]layout.Cluster) {
	lines := p.liner.GroupWords(words)
	stats := layout.PageSpacingStats(lines)

	clusters := make([][]layout.Cluster, len(lines))
	for i, line := range lines {
		clusters[i] = p.clusterer.ClusterLine(line, stats)
	}
	return lines, clusters
}

func validateWords(words []model.WordBox) error {
	for i, w := range words {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("word %d (%q): %w", i, w.Text, err)
		}
	}
	return nil
}
