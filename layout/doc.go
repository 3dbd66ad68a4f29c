// Package layout reconstructs the visual structure of a page from unordered
// word boxes.
//
// Reconstruction happens in two stages:
//
//   - [LineDetector] partitions word boxes into visual lines using a
//     vertical-center tolerance, producing lines ordered top to bottom with
//     words ordered left to right.
//   - [ProximityClusterer] partitions each line's words into clusters using
//     adaptive horizontal-gap thresholds, so that wide whitespace gaps
//     (which physical documents use to separate labels from values) become
//     cluster boundaries.
//
// Gap thresholds adapt to the page: [PageSpacingStats] summarizes the
// distribution of horizontal gaps, and the clusterer splits on gaps that are
// statistical outliers for the line (or the page, when a line is too short
// to estimate its own distribution).
//
// Both detectors are stateless aside from their configuration and are safe
// for concurrent use on different pages.
package layout
