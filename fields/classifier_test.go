package fields

import (
	"testing"

	"github.com/docfield/spatial/layout"
	"github.com/docfield/spatial/model"
)

func word(text string, x0, y0, x1, y1 float64) model.WordBox {
	return model.NewWordBox(text, x0, y0, x1, y1)
}

func textCluster(texts ...string) *layout.Cluster {
	words := make([]model.WordBox, len(texts))
	x := 0.0
	for i, t := range texts {
		w := float64(10 * len(t))
		words[i] = word(t, x, 0, x+w, 15)
		x += w + 8
	}
	return &layout.Cluster{Words: words}
}

func TestIsFieldPattern(t *testing.T) {
	c := NewClassifier()

	cases := []struct {
		words []string
		want  bool
	}{
		// Lexicon hits, including multi-word and case-folded forms.
		{[]string{"Status"}, true},
		{[]string{"Emp", "Id"}, true},
		{[]string{"STATUS"}, true},
		{[]string{"Gross", "Pay"}, true},
		// Trailing colon marks a label regardless of the lexicon.
		{[]string{"Remarks:"}, true},
		// Structural heuristic: short title-cased digit-free run.
		{[]string{"Caroline", "Jones"}, true},
		// Rejected: digits, too short, lowercase, value token,
		// terminal period, too many words.
		{[]string{"4632"}, false},
		{[]string{"A"}, false},
		{[]string{"hello"}, false},
		{[]string{"No"}, false},
		{[]string{"Ref", "No.", "Here."}, false},
		{[]string{"One", "Two", "Three", "Four"}, false},
		{[]string{"Invoice", "42"}, false},
	}

	for _, tc := range cases {
		cl := textCluster(tc.words...)
		if got := c.IsFieldPattern(cl); got != tc.want {
			t.Errorf("IsFieldPattern(%v): expected %v, got %v", tc.words, tc.want, got)
		}
	}
}

func TestIsFieldPatternCustomLexicon(t *testing.T) {
	c := NewClassifierWithConfig(Config{
		AlignmentTolerance: 10.0,
		MaxLabelWords:      3,
		Lexicon:            []string{"cost center"},
	})

	if !c.IsFieldPattern(textCluster("cost", "center")) {
		t.Error("Expected custom lexicon entry to classify as label")
	}
	if !c.IsFieldPattern(textCluster("Status")) {
		t.Error("Expected built-in lexicon to survive custom entries")
	}
}

func TestSplitMixed(t *testing.T) {
	c := NewClassifier()

	cases := []struct {
		words     []string
		wantStart int
		wantOK    bool
	}{
		{[]string{"Domestic", "Emp", "No"}, 2, true},
		{[]string{"Net", "Pay", "5000"}, 2, true},
		{[]string{"Status", "N/A"}, 1, true},
		// No value suffix, nothing to split, prefix not a label.
		{[]string{"Pay", "Group"}, 0, false},
		{[]string{"No"}, 0, false},
		{[]string{"42", "No"}, 0, false},
	}

	for _, tc := range cases {
		cl := textCluster(tc.words...)
		start, ok := c.splitMixed(cl)
		if ok != tc.wantOK || (ok && start != tc.wantStart) {
			t.Errorf("splitMixed(%v): expected (%d,%v), got (%d,%v)",
				tc.words, tc.wantStart, tc.wantOK, start, ok)
		}
	}
}

func TestNormalizeFoldsWidthAndCase(t *testing.T) {
	c := NewClassifier()

	// Full-width characters show up in OCR output and must match their
	// narrow lexicon forms.
	if got := c.normalize("ＳＴＡＴＵＳ"); got != "status" {
		t.Errorf("Expected 'status', got %q", got)
	}
	if !c.isLexiconLabel("ＳＴＡＴＵＳ") {
		t.Error("Expected full-width lexicon match")
	}
}

func TestLabelText(t *testing.T) {
	if got := labelText("Status:"); got != "Status" {
		t.Errorf("Expected 'Status', got %q", got)
	}
	if got := labelText("  Emp Id  "); got != "Emp Id" {
		t.Errorf("Expected 'Emp Id', got %q", got)
	}
}
