package source

import (
	"strings"
	"testing"
)

const sampleHOCR = `<!DOCTYPE html>
<html>
<body>
<div class="ocr_page" id="page_1" title="image &quot;form.png&quot;; bbox 0 0 1700 2200">
 <div class="ocr_carea">
  <p class="ocr_par">
   <span class="ocr_line" title="bbox 100 100 350 115">
    <span class="ocrx_word" title="bbox 100 100 130 115; x_wconf 96">Emp</span>
    <span class="ocrx_word" title="bbox 140 100 160 115; x_wconf 95">Id</span>
    <span class="ocrx_word" title="bbox 200 100 240 115; x_wconf 91">4632</span>
   </span>
   <span class="ocr_line" title="bbox 100 130 310 145">
    <span class="ocrx_word" title="bbox 300 130 310 145; x_wconf 88">A</span>
    <span class="ocrx_word" title="x_wconf 12">garbled</span>
    <span class="ocrx_word" title="bbox 400 130 410 145; x_wconf 4">  </span>
   </span>
  </p>
 </div>
</div>
<div class="ocr_page" id="page_2" title="bbox 0 0 1700 2200">
 <span class="ocrx_word" title="bbox 10 10 60 25; x_wconf 90">Status</span>
</div>
</body>
</html>`

func TestHOCRSourcePages(t *testing.T) {
	s := NewHOCRSource(strings.NewReader(sampleHOCR))

	pages, err := s.Pages()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("Expected 2 pages, got %d", len(pages))
	}

	p := pages[0]
	if p.Number != 1 {
		t.Errorf("Expected page number 1, got %d", p.Number)
	}
	if p.Width != 1700 || p.Height != 2200 {
		t.Errorf("Expected page size 1700x2200, got %fx%f", p.Width, p.Height)
	}

	// The word with no bbox and the whitespace-only word are skipped.
	if len(p.Words) != 4 {
		t.Fatalf("Expected 4 words on page 1, got %d", len(p.Words))
	}
	want := []string{"Emp", "Id", "4632", "A"}
	for i, w := range want {
		if p.Words[i].Text != w {
			t.Errorf("Word %d: expected %q, got %q", i, w, p.Words[i].Text)
		}
	}

	w := p.Words[0]
	if w.X0() != 100 || w.Y0() != 100 || w.X1() != 130 || w.Y1() != 115 {
		t.Errorf("Unexpected box for first word: %+v", w.Box)
	}

	if pages[1].Number != 2 || len(pages[1].Words) != 1 {
		t.Errorf("Unexpected second page: %+v", pages[1])
	}
}

func TestHOCRSourceEmptyInput(t *testing.T) {
	s := NewHOCRSource(strings.NewReader("<html><body></body></html>"))

	pages, err := s.Pages()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("Expected no pages, got %d", len(pages))
	}
}
