package source

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/docfield/spatial/model"
)

// Tesseract TSV column layout (tesseract ... tsv).
const (
	tsvLevel = iota
	tsvPageNum
	tsvBlockNum
	tsvParNum
	tsvLineNum
	tsvWordNum
	tsvLeft
	tsvTop
	tsvWidth
	tsvHeight
	tsvConf
	tsvText
	tsvColumns = 12
)

// wordLevel is the hierarchy level of word rows in Tesseract TSV output.
const wordLevel = 5

// TSVSource extracts word boxes from Tesseract's TSV output format.
// Coordinates are top-left-origin pixels and pass through unchanged.
type TSVSource struct {
	r io.Reader

	// MinConfidence drops words Tesseract is unsure about; rows with a
	// confidence below this value are skipped. Default 0 keeps everything
	// Tesseract recognized (confidence -1 rows are structural, not words,
	// and are always skipped).
	MinConfidence float64
}

// NewTSVSource creates a source reading Tesseract TSV from r.
func NewTSVSource(r io.Reader) *TSVSource {
	return &TSVSource{r: r}
}

// Pages parses the TSV stream, returning one Page per page number seen.
// Page dimensions are taken from each page's level-1 row when present.
func (s *TSVSource) Pages() ([]Page, error) {
	scanner := bufio.NewScanner(s.r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	var pages []Page
	byNumber := make(map[int]int) // page number -> index in pages

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		// Structural rows (levels 1-4) carry no text, and Tesseract omits
		// the trailing column for them; word rows need all 12 columns.
		cols := strings.Split(line, "\t")
		if len(cols) < tsvColumns-1 {
			continue
		}
		if lineNo == 1 && cols[tsvLevel] == "level" {
			continue // header row
		}

		level, err := strconv.Atoi(cols[tsvLevel])
		if err != nil {
			return nil, fmt.Errorf("tsv line %d: bad level %q", lineNo, cols[tsvLevel])
		}
		pageNum, err := strconv.Atoi(cols[tsvPageNum])
		if err != nil {
			return nil, fmt.Errorf("tsv line %d: bad page_num %q", lineNo, cols[tsvPageNum])
		}

		idx, ok := byNumber[pageNum]
		if !ok {
			pages = append(pages, Page{Number: pageNum})
			idx = len(pages) - 1
			byNumber[pageNum] = idx
		}

		left, _ := strconv.ParseFloat(cols[tsvLeft], 64)
		top, _ := strconv.ParseFloat(cols[tsvTop], 64)
		width, _ := strconv.ParseFloat(cols[tsvWidth], 64)
		height, _ := strconv.ParseFloat(cols[tsvHeight], 64)

		if level == 1 {
			pages[idx].Width = width
			pages[idx].Height = height
			continue
		}
		if level != wordLevel || len(cols) < tsvColumns {
			continue
		}

		conf, _ := strconv.ParseFloat(cols[tsvConf], 64)
		if conf < 0 || conf < s.MinConfidence {
			continue
		}

		text := strings.TrimSpace(cols[tsvText])
		if text == "" {
			continue
		}

		pages[idx].Words = append(pages[idx].Words, model.WordBox{
			Text: text,
			Box:  model.NewBBox(left, top, width, height),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading tsv: %w", err)
	}

	return pages, nil
}
