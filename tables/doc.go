// Package tables detects grid-like arrangements of clusters across
// consecutive lines and extracts them as structured table regions.
//
// Detection scans the page top to bottom for a header line (several short,
// digit-free clusters) followed by one or more lines whose cluster left
// edges align, within tolerance, to the header's cluster left edges. Each
// qualifying run becomes a [model.TableRegion]: headers from the header
// line's cluster texts, rows from the aligned lines, with cells mapped to
// the nearest header column and missing cells left empty.
//
// The detector also reports which page lines each region absorbed, so the
// serializer can exclude them from the plain label:value output and render
// the table once, in structured form.
//
// Detection is binary: a run of lines either qualifies or it does not.
// "No tables found" is an empty result, not an error.
package tables
