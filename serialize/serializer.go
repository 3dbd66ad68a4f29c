package serialize

import (
	"fmt"
	"strings"

	"github.com/docfield/spatial/fields"
	"github.com/docfield/spatial/model"
)

// Config holds serializer configuration.
type Config struct {
	// FieldSeparator joins fields that share a physical line
	// (default: four spaces).
	FieldSeparator string

	// EmptySentinel renders in place of a value for labels with no
	// resolvable value (default: "[EMPTY]"). A label is never dropped.
	EmptySentinel string
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		FieldSeparator: "    ",
		EmptySentinel:  "[EMPTY]",
	}
}

// Serializer renders classified lines and table regions into text.
type Serializer struct {
	config Config
}

// NewSerializer creates a serializer with default configuration.
func NewSerializer() *Serializer {
	return &Serializer{config: DefaultConfig()}
}

// NewSerializerWithConfig creates a serializer with custom configuration.
func NewSerializerWithConfig(config Config) *Serializer {
	return &Serializer{config: config}
}

// Render walks lines top to bottom and emits one text line per visual line
// that still has content: clusters consumed as cross-line values leave
// their line, and a fully consumed line disappears rather than printing
// blank. Table-absorbed lines are replaced by the region's block, emitted
// once at the region's first line. Zero input renders as "".
func (s *Serializer) Render(items [][]fields.Item, regions []model.TableRegion) string {
	tableAt := make(map[int]*model.TableRegion, len(regions))
	absorbed := make(map[int]bool)
	for i := range regions {
		r := &regions[i]
		tableAt[r.FirstLine] = r
		for j := r.FirstLine; j <= r.LastLine; j++ {
			absorbed[j] = true
		}
	}

	var out []string
	for i, lineItems := range items {
		if r, ok := tableAt[i]; ok {
			out = append(out, s.renderTable(r))
			continue
		}
		if absorbed[i] {
			continue
		}
		if line := s.renderLine(lineItems); line != "" {
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n")
}

// renderLine joins a line's items with the field separator.
func (s *Serializer) renderLine(items []fields.Item) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		switch item.Kind {
		case fields.ItemField:
			parts = append(parts, s.renderField(item.Field))
		case fields.ItemText:
			if item.Text != "" {
				parts = append(parts, item.Text)
			}
		}
	}
	return strings.Join(parts, s.config.FieldSeparator)
}

// renderField renders one label/value pair, substituting the sentinel for
// missing values.
func (s *Serializer) renderField(f fields.Field) string {
	value := f.Value
	if !f.HasValue || value == "" {
		value = s.config.EmptySentinel
	}
	return f.Label + ": " + value
}

// renderTable renders a region as a structured block: a size marker, the
// header row, then data rows, cells joined with " | ".
func (s *Serializer) renderTable(r *model.TableRegion) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[TABLE %dx%d]\n", r.RowCount, r.ColumnCount)
	sb.WriteString(strings.Join(r.Headers, " | "))
	for _, row := range r.Rows {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(row, " | "))
	}
	sb.WriteString("\n[/TABLE]")
	return sb.String()
}
