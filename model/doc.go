// Package model defines the shared data types used throughout the spatial
// layout pipeline.
//
// The central type is [WordBox], a single recognized word with its bounding
// rectangle in page space. Coordinates use a top-left origin: X grows to the
// right, Y grows downward, matching the output of PDF word extractors and
// OCR engines.
//
// Derived types produced by the pipeline:
//
//   - [SpacingStats] - summary statistics of horizontal word gaps on a page
//   - [TableRegion] - a detected grid of aligned clusters spanning lines
//
// Geometry helpers ([Point], [BBox]) support the detection algorithms.
package model
