package serialize

import (
	"testing"

	"github.com/docfield/spatial/fields"
	"github.com/docfield/spatial/model"
)

func fieldItem(label, value string) fields.Item {
	return fields.Item{
		Kind: fields.ItemField,
		Field: fields.Field{
			Label:    label,
			Value:    value,
			HasValue: value != "",
		},
	}
}

func textItem(text string) fields.Item {
	return fields.Item{Kind: fields.ItemText, Text: text}
}

func TestRenderEmpty(t *testing.T) {
	s := NewSerializer()

	if got := s.Render(nil, nil); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
}

func TestRenderFieldsAndSentinel(t *testing.T) {
	s := NewSerializer()

	items := [][]fields.Item{
		{fieldItem("Emp Id", "4632"), fieldItem("Status", "A")},
		{fieldItem("Emp Type", "")},
	}

	got := s.Render(items, nil)
	want := "Emp Id: 4632    Status: A\nEmp Type: [EMPTY]"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRenderSkipsEmptyLines(t *testing.T) {
	s := NewSerializer()

	// A line whose clusters were all consumed elsewhere yields no items
	// and must not print a blank line.
	items := [][]fields.Item{
		{fieldItem("Status", "A")},
		nil,
		{textItem("footer")},
	}

	got := s.Render(items, nil)
	want := "Status: A\nfooter"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRenderMixedFieldAndText(t *testing.T) {
	s := NewSerializer()

	items := [][]fields.Item{
		{textItem("ACME Corp"), fieldItem("Date", "2024-01-05")},
	}

	got := s.Render(items, nil)
	want := "ACME Corp    Date: 2024-01-05"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRenderCustomConfig(t *testing.T) {
	s := NewSerializerWithConfig(Config{
		FieldSeparator: " | ",
		EmptySentinel:  "<none>",
	})

	items := [][]fields.Item{
		{fieldItem("A", "1"), fieldItem("B", "")},
	}

	got := s.Render(items, nil)
	want := "A: 1 | B: <none>"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRenderTableBlock(t *testing.T) {
	s := NewSerializer()

	items := [][]fields.Item{
		nil, // header line, absorbed
		nil, // row, absorbed
		nil, // row, absorbed
		{fieldItem("Status", "A")},
	}
	regions := []model.TableRegion{{
		Headers:     []string{"Deduction", "Amount", "YTD"},
		Rows:        [][]string{{"Tax", "100.00", "350.00"}, {"Insurance", "50.00", "150.00"}},
		RowCount:    2,
		ColumnCount: 3,
		FirstLine:   0,
		LastLine:    2,
	}}

	got := s.Render(items, regions)
	want := "[TABLE 2x3]\n" +
		"Deduction | Amount | YTD\n" +
		"Tax | 100.00 | 350.00\n" +
		"Insurance | 50.00 | 150.00\n" +
		"[/TABLE]\n" +
		"Status: A"
	if got != want {
		t.Errorf("Expected:\n%s\nGot:\n%s", want, got)
	}
}
