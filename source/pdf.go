package source

import (
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/docfield/spatial/model"
)

// PDFSource extracts word boxes from a born-digital PDF's text layer.
// Character runs are merged into words by baseline and gap analysis; the
// y-up PDF coordinates are flipped into the pipeline's top-left-origin
// space.
type PDFSource struct {
	// Path is the PDF file to read.
	Path string
}

// NewPDFSource creates a source reading the given PDF file.
func NewPDFSource(path string) *PDFSource {
	return &PDFSource{Path: path}
}

// Pages extracts word boxes for every page of the PDF.
func (s *PDFSource) Pages() ([]Page, error) {
	f, reader, err := pdflib.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]Page, 0, numPages)

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		width, height := pageSize(page)
		words := assembleWords(page.Content().Text, height)

		pages = append(pages, Page{
			Number: i,
			Width:  width,
			Height: height,
			Words:  words,
		})
	}

	return pages, nil
}

// pageSize resolves the page's MediaBox, walking up the page tree when the
// box is inherited. Falls back to US Letter when absent.
func pageSize(page pdflib.Page) (width, height float64) {
	v := page.V
	for !v.IsNull() {
		mb := v.Key("MediaBox")
		if !mb.IsNull() {
			x0 := mb.Index(0).Float64()
			y0 := mb.Index(1).Float64()
			x1 := mb.Index(2).Float64()
			y1 := mb.Index(3).Float64()
			return x1 - x0, y1 - y0
		}
		v = v.Key("Parent")
	}
	return 612, 792
}

// assembleWords merges the page's positioned character runs into words.
// A new word begins at a baseline change, at a gap wider than a fraction
// of the font size, or when the stream jumps backwards.
func assembleWords(texts []pdflib.Text, pageHeight float64) []model.WordBox {
	var words []model.WordBox

	var (
		cur      strings.Builder
		x0, x1   float64
		baseline float64
		fontSize float64
	)

	flush := func() {
		text := strings.TrimSpace(cur.String())
		if text != "" {
			words = append(words, wordFromRun(text, x0, x1, baseline, fontSize, pageHeight))
		}
		cur.Reset()
	}

	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			flush()
			continue
		}

		if cur.Len() > 0 {
			gap := t.X - x1
			maxGap := t.FontSize * 0.3
			if maxGap < 1.0 {
				maxGap = 1.0
			}
			sameBaseline := absFloat(t.Y-baseline) <= 0.5
			if !sameBaseline || gap > maxGap || gap < -1.0 {
				flush()
			}
		}

		if cur.Len() == 0 {
			x0 = t.X
			baseline = t.Y
			fontSize = t.FontSize
		}
		if t.FontSize > fontSize {
			fontSize = t.FontSize
		}
		cur.WriteString(t.S)
		x1 = t.X + t.W
	}
	flush()

	return words
}

// wordFromRun converts one merged run into a word box in top-left-origin
// space. The box height is the font size, split 80/20 around the baseline.
func wordFromRun(text string, x0, x1, baseline, fontSize float64, pageHeight float64) model.WordBox {
	if fontSize <= 0 {
		fontSize = 12
	}
	top := pageHeight - baseline - fontSize*0.8
	return model.NewWordBox(text, x0, top, x1, top+fontSize)
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
