package model

import (
	"errors"
	"math"
	"testing"
)

func TestNewWordBox(t *testing.T) {
	w := NewWordBox("Status", 300, 200, 350, 215)

	if w.Text != "Status" {
		t.Errorf("Expected text 'Status', got %q", w.Text)
	}
	if w.X0() != 300 || w.X1() != 350 {
		t.Errorf("Expected x range [300,350], got [%f,%f]", w.X0(), w.X1())
	}
	if w.Y0() != 200 || w.Y1() != 215 {
		t.Errorf("Expected y range [200,215], got [%f,%f]", w.Y0(), w.Y1())
	}
	if w.CenterX() != 325 {
		t.Errorf("Expected center x 325, got %f", w.CenterX())
	}
	if w.CenterY() != 207.5 {
		t.Errorf("Expected center y 207.5, got %f", w.CenterY())
	}
	if w.Width() != 50 || w.Height() != 15 {
		t.Errorf("Expected 50x15, got %fx%f", w.Width(), w.Height())
	}
}

func TestWordBoxValidate(t *testing.T) {
	valid := NewWordBox("ok", 0, 0, 10, 10)
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid word, got %v", err)
	}

	// Zero-width boxes are degenerate but accepted.
	zeroWidth := NewWordBox("x", 5, 5, 5, 10)
	if err := zeroWidth.Validate(); err != nil {
		t.Errorf("Expected zero-width box to validate, got %v", err)
	}

	// Empty text, inverted x, inverted y, NaN, Inf.
	invalid := []WordBox{
		NewWordBox("", 0, 0, 10, 10),
		NewWordBox("x", 10, 0, 5, 10),
		NewWordBox("x", 0, 10, 10, 5),
		NewWordBox("x", math.NaN(), 0, 10, 10),
		NewWordBox("x", 0, 0, math.Inf(1), 10),
	}
	for i, w := range invalid {
		err := w.Validate()
		if err == nil {
			t.Errorf("Case %d: expected validation error", i)
			continue
		}
		if !errors.Is(err, ErrInvalidWord) {
			t.Errorf("Case %d: expected ErrInvalidWord, got %v", i, err)
		}
	}
}

func TestBBoxGeometry(t *testing.T) {
	b := NewBBox(10, 20, 30, 40)

	if b.Left() != 10 || b.Right() != 40 {
		t.Errorf("Expected x range [10,40], got [%f,%f]", b.Left(), b.Right())
	}
	if b.Top() != 20 || b.Bottom() != 60 {
		t.Errorf("Expected y range [20,60], got [%f,%f]", b.Top(), b.Bottom())
	}

	c := b.Center()
	if c.X != 25 || c.Y != 40 {
		t.Errorf("Expected center (25,40), got (%f,%f)", c.X, c.Y)
	}

	if !b.Contains(Point{X: 15, Y: 30}) {
		t.Error("Expected point inside box")
	}
	if b.Contains(Point{X: 5, Y: 30}) {
		t.Error("Expected point outside box")
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(20, 5, 10, 10)

	u := a.Union(b)
	if u.X != 0 || u.Y != 0 || u.Width != 30 || u.Height != 15 {
		t.Errorf("Unexpected union: %+v", u)
	}
}

func TestBBoxIntersects(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)

	if !a.Intersects(NewBBox(5, 5, 10, 10)) {
		t.Error("Expected overlapping boxes to intersect")
	}
	if a.Intersects(NewBBox(20, 20, 5, 5)) {
		t.Error("Expected disjoint boxes not to intersect")
	}
}

func TestTableRegionCell(t *testing.T) {
	r := TableRegion{
		Headers: []string{"A", "B"},
		Rows:    [][]string{{"1", "2"}, {"3", "4"}},
	}

	if got := r.Cell(1, 0); got != "3" {
		t.Errorf("Expected cell '3', got %q", got)
	}
	if got := r.Cell(5, 0); got != "" {
		t.Errorf("Expected empty cell out of range, got %q", got)
	}
	if got := r.Cell(0, 9); got != "" {
		t.Errorf("Expected empty cell out of range, got %q", got)
	}
}
