package fields

import (
	"github.com/docfield/spatial/layout"
	"github.com/docfield/spatial/model"
)

// Field is a resolved (label, value) pair. A label with no resolvable value
// has HasValue false and an empty Value; it is never silently dropped.
type Field struct {
	Label    string
	Value    string
	HasValue bool

	// LabelBox and ValueBox locate the pair on the page. ValueBox is zero
	// when HasValue is false.
	LabelBox model.BBox
	ValueBox model.BBox
}

// ItemKind discriminates the variants of [Item].
type ItemKind int

const (
	// ItemField is a resolved label/value pair.
	ItemField ItemKind = iota

	// ItemText is a cluster that classified as neither label nor value;
	// it is carried through to the output as bare text.
	ItemText
)

// Item is one classified element of a line, in left-to-right order.
// It is a tagged variant: Field is set for ItemField, Text for ItemText.
type Item struct {
	Kind  ItemKind
	Field Field
	Text  string
	Box   model.BBox
}

// clusterState tracks per-cluster resolution state across the two passes.
type clusterState struct {
	cl       *layout.Cluster
	labelish bool
	strong   bool // lexicon hit, not just structural
	consumed bool // taken as some label's value
	pending  bool // label waiting for cross-line resolution
	field    *Field
}

// Resolve classifies the page's clusters and resolves them into per-line
// item sequences. lines and clusters must be parallel (clusters[i] belongs
// to lines[i]). exclude marks lines that were absorbed into table regions;
// excluded lines yield no items and are never searched for values. Cluster
// roles are updated in place as a side effect.
//
// Pass 1 pairs labels with values on the same line; pass 2 resolves labels
// left unmatched, first by splitting a trailing value run off the label's
// own cluster, then by searching the immediately following line for an
// x-aligned value cluster.
func (c *Classifier) Resolve(lines []layout.Line, clusters [][]layout.Cluster, exclude []bool) [][]Item {
	states := make([][]clusterState, len(lines))
	for i := range lines {
		if excluded(exclude, i) {
			continue
		}
		states[i] = make([]clusterState, len(clusters[i]))
		for j := range clusters[i] {
			cl := &clusters[i][j]
			st := &states[i][j]
			st.cl = cl
			st.labelish = c.IsFieldPattern(cl)
			st.strong = c.isLexiconLabel(cl.Text())
		}
	}

	for i := range states {
		c.pairSameLine(states[i])
	}
	c.resolvePending(lines, states, exclude)

	items := make([][]Item, len(lines))
	for i, lineStates := range states {
		items[i] = assembleItems(lineStates)
	}
	return items
}

// pairSameLine is pass 1: scan a line's clusters left to right, pairing
// each label with the cluster that follows it unless that cluster must
// stand alone as its own label (it is a lexicon label, or it hides its own
// value and will be split later).
func (c *Classifier) pairSameLine(states []clusterState) {
	n := len(states)
	for j := 0; j < n; {
		st := &states[j]
		if !st.labelish {
			j++
			continue
		}

		if j+1 < n {
			nxt := &states[j+1]
			if !nxt.labelish {
				pair(st, nxt)
				j += 2
				continue
			}
			if _, splittable := c.splitMixed(nxt.cl); splittable || nxt.strong {
				st.pending = true
				j++
				continue
			}
			// Weak label with no value of its own: read it as this
			// label's value rather than leaving both unmatched.
			pair(st, nxt)
			j += 2
			continue
		}

		st.pending = true
		j++
	}
}

// resolvePending is pass 2. Pending labels try, in order: splitting a
// value run off their own cluster, then consuming an x-aligned non-label
// cluster from the immediately following line. Labels that still have no
// value are recorded with an empty value sentinel state.
func (c *Classifier) resolvePending(lines []layout.Line, states [][]clusterState, exclude []bool) {
	tol := c.config.AlignmentTolerance

	for i := range states {
		for j := range states[i] {
			st := &states[i][j]
			if !st.pending {
				continue
			}

			if idx, ok := c.splitMixed(st.cl); ok {
				st.field = &Field{
					Label:    labelText(wordsText(st.cl.Words[:idx])),
					Value:    wordsText(st.cl.Words[idx:]),
					HasValue: true,
					LabelBox: wordsBBox(st.cl.Words[:idx]),
					ValueBox: wordsBBox(st.cl.Words[idx:]),
				}
				st.cl.Role = layout.RoleLabel
				continue
			}

			if i+1 < len(states) && !excluded(exclude, i+1) {
				box := st.cl.BBox()
				for k := range states[i+1] {
					cand := &states[i+1][k]
					if cand.consumed || cand.labelish {
						continue
					}
					cx := cand.cl.CenterX()
					if cx >= box.Left()-tol && cx <= box.Right()+tol {
						st.field = &Field{
							Label:    labelText(st.cl.Text()),
							Value:    cand.cl.Text(),
							HasValue: true,
							LabelBox: box,
							ValueBox: cand.cl.BBox(),
						}
						st.cl.Role = layout.RoleLabel
						cand.cl.Role = layout.RoleValue
						cand.consumed = true
						break
					}
				}
			}

			if st.field == nil {
				st.field = &Field{
					Label:    labelText(st.cl.Text()),
					HasValue: false,
					LabelBox: st.cl.BBox(),
				}
				st.cl.Role = layout.RoleLabel
			}
		}
	}
}

// pair records nxt as st's same-line value.
func pair(st, nxt *clusterState) {
	st.field = &Field{
		Label:    labelText(st.cl.Text()),
		Value:    nxt.cl.Text(),
		HasValue: true,
		LabelBox: st.cl.BBox(),
		ValueBox: nxt.cl.BBox(),
	}
	st.cl.Role = layout.RoleLabel
	nxt.cl.Role = layout.RoleValue
	nxt.consumed = true
}

// assembleItems builds the line's ordered item sequence: fields at their
// label's position, unconsumed non-labels as bare text, consumed value
// clusters omitted (they already appear inside a field).
func assembleItems(states []clusterState) []Item {
	var items []Item
	for i := range states {
		st := &states[i]
		switch {
		case st.field != nil:
			items = append(items, Item{Kind: ItemField, Field: *st.field, Box: st.cl.BBox()})
		case st.consumed:
			// Value already rendered with its label.
		case st.cl != nil:
			items = append(items, Item{Kind: ItemText, Text: st.cl.Text(), Box: st.cl.BBox()})
		}
	}
	return items
}

func excluded(exclude []bool, i int) bool {
	return exclude != nil && i < len(exclude) && exclude[i]
}
