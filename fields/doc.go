// Package fields classifies word clusters into field labels and values and
// resolves them into ordered (label, value) pairs.
//
// Classification is heuristic. A cluster reads as a label when it matches a
// known label lexicon, carries explicit label punctuation (a trailing
// colon), or structurally resembles one: a short title-cased run with no
// embedded digits. None of these signals is individually required.
//
// Resolution is an explicit two-pass process:
//
//  1. Same-line pairing: scanning left to right, a label consumes the next
//     cluster on its line as its value unless that cluster is itself a
//     label that must stand alone.
//  2. Cross-line association: a label still unmatched after pass 1 searches
//     the immediately following line for a cluster horizontally aligned
//     with the label's x-range and consumes it as its value. This resolves
//     the common pattern where a column header sits directly above its
//     value.
//
// A label with no resolvable value keeps an empty value; the serializer
// renders it with an explicit sentinel rather than dropping it.
//
// The ambiguity policy, when adjacent clusters could each be read as
// "label value" or "label label": prefer the interpretation that leaves no
// label without a consumed value, unless that would hand a second value to
// an already-satisfied label. Ties break left to right, then top to bottom.
// The heuristics are best-effort; the only contract is deterministic output
// for a given word-box set, independent of input order.
package fields
