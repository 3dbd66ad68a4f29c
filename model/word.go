package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidWord is returned when a word box is malformed beyond repair:
// inverted coordinates, NaN/Inf coordinates, or empty text. Degenerate but
// orderable input (zero-width boxes, overlapping neighbors) is normalized by
// the pipeline instead of rejected.
var ErrInvalidWord = errors.New("invalid word box")

// WordBox is a single recognized word with its bounding rectangle on a page.
// Word boxes are produced by an external extractor (PDF text layer, OCR) and
// are treated as immutable by the pipeline.
type WordBox struct {
	// Text is the literal token. Never empty in well-formed input.
	Text string

	// Box is the word's bounding rectangle in top-left-origin page space.
	Box BBox
}

// NewWordBox creates a word box from corner coordinates (x0,y0 top-left,
// x1,y1 bottom-right).
func NewWordBox(text string, x0, y0, x1, y1 float64) WordBox {
	return WordBox{
		Text: text,
		Box:  BBox{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0},
	}
}

// X0 returns the left edge of the word.
func (w WordBox) X0() float64 { return w.Box.Left() }

// X1 returns the right edge of the word.
func (w WordBox) X1() float64 { return w.Box.Right() }

// Y0 returns the top edge of the word.
func (w WordBox) Y0() float64 { return w.Box.Top() }

// Y1 returns the bottom edge of the word.
func (w WordBox) Y1() float64 { return w.Box.Bottom() }

// CenterX returns the horizontal center of the word.
func (w WordBox) CenterX() float64 { return w.Box.Center().X }

// CenterY returns the vertical center of the word.
func (w WordBox) CenterY() float64 { return w.Box.Center().Y }

// Width returns the width of the word's box.
func (w WordBox) Width() float64 { return w.Box.Width }

// Height returns the height of the word's box.
func (w WordBox) Height() float64 { return w.Box.Height }

// Validate checks the word box for malformed geometry or content.
// It returns an error wrapping [ErrInvalidWord] when the box cannot be
// used: empty text, NaN or infinite coordinates, or inverted edges
// (x1 < x0 or y1 < y0). Zero-width and zero-height boxes are accepted.
func (w WordBox) Validate() error {
	if w.Text == "" {
		return fmt.Errorf("%w: empty text", ErrInvalidWord)
	}
	for _, v := range []float64{w.Box.X, w.Box.Y, w.Box.Width, w.Box.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite coordinate", ErrInvalidWord)
		}
	}
	if w.Box.Width < 0 {
		return fmt.Errorf("%w: x1 < x0", ErrInvalidWord)
	}
	if w.Box.Height < 0 {
		return fmt.Errorf("%w: y1 < y0", ErrInvalidWord)
	}
	return nil
}
