package source

import "github.com/docfield/spatial/model"

// Page is one page's worth of extracted words plus the page dimensions.
type Page struct {
	// Number is the 1-based page number.
	Number int

	// Width and Height are the page dimensions in the same units as the
	// word coordinates.
	Width, Height float64

	// Words are the page's word boxes in extraction order. The pipeline
	// sorts internally, so the order carries no meaning.
	Words []model.WordBox
}

// Source produces word boxes from an external document representation.
type Source interface {
	// Pages extracts all pages. Implementations return an empty slice,
	// not an error, for documents that simply contain no text.
	Pages() ([]Page, error)
}
