package fields

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"

	"github.com/docfield/spatial/layout"
	"github.com/docfield/spatial/model"
)

// Config holds configuration for field classification and resolution.
type Config struct {
	// AlignmentTolerance is the horizontal slack, in page units, when
	// matching a next-line value cluster to a label's x-range (default: 10.0).
	AlignmentTolerance float64

	// MaxLabelWords is the maximum word count for a cluster to structurally
	// qualify as a label without a lexicon hit (default: 3).
	MaxLabelWords int

	// Lexicon adds label phrases to the built-in lexicon. Entries are
	// matched case-insensitively against the full cluster text.
	Lexicon []string
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		AlignmentTolerance: 10.0,
		MaxLabelWords:      3,
	}
}

// defaultLexicon lists label phrases commonly seen on the form-like
// documents this pipeline targets. Matches are exact against the
// normalized cluster text.
var defaultLexicon = []string{
	"name", "first name", "last name", "full name", "employee", "employee name",
	"emp id", "emp no", "emp type", "employee id", "id", "status",
	"department", "designation", "division", "location", "grade",
	"pay group", "pay period", "pay date", "date", "dob", "date of birth",
	"address", "phone", "email", "gender", "type", "amount", "total",
	"gross pay", "net pay", "account", "bank", "currency",
}

// valueTokens are short tokens that read as values, never labels. A cluster
// tail made of these (or digit-bearing tokens) can be split off a mixed
// label cluster as its value.
var valueTokens = []string{
	"yes", "no", "n/a", "na", "none", "nil", "true", "false",
	"active", "inactive", "y", "n",
}

// Classifier assigns field/value roles to clusters and resolves them into
// ordered pairs. It is stateless aside from configuration and safe for
// concurrent use.
type Classifier struct {
	config      Config
	lexicon     map[string]bool
	valueTokens map[string]bool
}

// NewClassifier creates a classifier with default configuration.
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultConfig())
}

// NewClassifierWithConfig creates a classifier with custom configuration.
// Lexicon entries from the config are merged with the built-in lexicon.
func NewClassifierWithConfig(config Config) *Classifier {
	c := &Classifier{
		config:      config,
		lexicon:     make(map[string]bool, len(defaultLexicon)+len(config.Lexicon)),
		valueTokens: make(map[string]bool, len(valueTokens)),
	}
	for _, entry := range defaultLexicon {
		c.lexicon[c.normalize(entry)] = true
	}
	for _, entry := range config.Lexicon {
		c.lexicon[c.normalize(entry)] = true
	}
	for _, tok := range valueTokens {
		c.valueTokens[c.normalize(tok)] = true
	}
	return c
}

// normalize folds a token for lexicon matching: full-width forms are
// narrowed (OCR output mixes them in) and case is folded. A fresh Caser is
// used per call; cases.Caser carries transform state and must not be shared
// between goroutines.
func (c *Classifier) normalize(s string) string {
	return cases.Fold().String(width.Fold.String(strings.TrimSpace(s)))
}

// IsFieldPattern reports whether the cluster reads as a field label: a
// lexicon match, explicit label punctuation (trailing colon), or a short
// title-cased digit-free run.
func (c *Classifier) IsFieldPattern(cl *layout.Cluster) bool {
	text := strings.TrimSpace(cl.Text())
	if text == "" {
		return false
	}
	if c.isLexiconLabel(text) {
		return true
	}
	if strings.HasSuffix(text, ":") {
		return true
	}
	return c.looksLikeLabel(text)
}

// isLexiconLabel reports whether the text (minus any trailing colon) is a
// known label phrase.
func (c *Classifier) isLexiconLabel(text string) bool {
	return c.lexicon[c.normalize(strings.TrimSuffix(text, ":"))]
}

// looksLikeLabel applies the structural label heuristic: at most
// MaxLabelWords words, every word starting with an uppercase letter, no
// embedded digits, no terminal sentence punctuation, and enough letters to
// rule out stray single characters.
func (c *Classifier) looksLikeLabel(text string) bool {
	if strings.HasSuffix(text, ".") {
		return false
	}
	words := strings.Fields(text)
	if len(words) == 0 || len(words) > c.config.MaxLabelWords {
		return false
	}

	runeCount := 0
	for _, w := range words {
		if containsDigit(w) {
			return false
		}
		r := []rune(w)
		if !unicode.IsUpper(r[0]) {
			return false
		}
		runeCount += len(r)
	}
	if runeCount < 3 {
		return false
	}
	if len(words) == 1 && c.valueTokens[c.normalize(words[0])] {
		return false
	}
	return true
}

// isValueToken reports whether a single word reads as a value: it carries
// digits or is a known short value token ("No", "N/A", ...).
func (c *Classifier) isValueToken(word string) bool {
	return containsDigit(word) || c.valueTokens[c.normalize(word)]
}

// splitMixed tries to split a label-like cluster into a label prefix and a
// value suffix, e.g. "Domestic Emp No" into ("Domestic Emp", "No"). The
// shortest value-like suffix wins; the prefix must still read as a label.
// Returns the word index where the value starts, or ok=false when no split
// qualifies.
func (c *Classifier) splitMixed(cl *layout.Cluster) (valueStart int, ok bool) {
	n := len(cl.Words)
	if n < 2 {
		return 0, false
	}

	for s := 1; s < n; s++ {
		idx := n - s
		suffixOK := true
		for _, w := range cl.Words[idx:] {
			if !c.isValueToken(w.Text) {
				suffixOK = false
				break
			}
		}
		if !suffixOK {
			continue
		}

		prefix := make([]string, idx)
		for i, w := range cl.Words[:idx] {
			prefix[i] = w.Text
		}
		prefixText := strings.Join(prefix, " ")
		if c.isLexiconLabel(prefixText) || c.looksLikeLabel(prefixText) {
			return idx, true
		}
	}
	return 0, false
}

// labelText returns a cluster text suitable for output as a label: trailing
// colons are stripped because the serializer adds its own.
func labelText(text string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), ":"))
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func wordsBBox(words []model.WordBox) model.BBox {
	if len(words) == 0 {
		return model.BBox{}
	}
	box := words[0].Box
	for _, w := range words[1:] {
		box = box.Union(w.Box)
	}
	return box
}

func wordsText(words []model.WordBox) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}
