// Package serialize renders classified page content into the deterministic
// label:value text stream consumed by downstream prompt construction.
//
// Each visual line becomes one output line. Resolved fields render as
// "Label: Value" (or "Label: [EMPTY]" when no value could be resolved);
// several fields sharing a physical line are joined with a fixed multi-space
// delimiter (four spaces by default). Unclassified clusters pass through as
// bare text. Lines absorbed into a detected table are replaced by a single
// structured table block at the table's position.
package serialize
