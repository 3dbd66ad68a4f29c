package source

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/docfield/spatial/model"
)

// HOCRSource extracts word boxes from an hOCR document, the HTML-based
// format OCR engines emit. hOCR coordinates are already top-left-origin
// pixels, so they pass through unchanged.
type HOCRSource struct {
	r io.Reader
}

// NewHOCRSource creates a source reading hOCR markup from r.
func NewHOCRSource(r io.Reader) *HOCRSource {
	return &HOCRSource{r: r}
}

// OpenHOCR opens an hOCR file. The returned source reads the whole file on
// the first Pages call.
func OpenHOCR(filename string) (*HOCRSource, io.Closer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("opening file: %w", err)
	}
	return &HOCRSource{r: f}, f, nil
}

// Pages parses the hOCR markup and returns one Page per ocr_page element.
// Words with unparseable bounding boxes are skipped.
func (s *HOCRSource) Pages() ([]Page, error) {
	doc, err := html.Parse(s.r)
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR: %w", err)
	}

	var pages []Page
	collectPages(doc, &pages)

	for i := range pages {
		pages[i].Number = i + 1
	}
	return pages, nil
}

// collectPages walks the node tree gathering ocr_page elements.
func collectPages(n *html.Node, pages *[]Page) {
	if n.Type == html.ElementNode && hasClass(n, "ocr_page") {
		page := Page{}
		if box, ok := titleBBox(n); ok {
			page.Width = box.Width
			page.Height = box.Height
		}
		collectWords(n, &page.Words)
		*pages = append(*pages, page)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectPages(c, pages)
	}
}

// collectWords walks a page subtree gathering ocrx_word elements.
func collectWords(n *html.Node, words *[]model.WordBox) {
	if n.Type == html.ElementNode && hasClass(n, "ocrx_word") {
		text := strings.TrimSpace(textContent(n))
		box, ok := titleBBox(n)
		if text != "" && ok {
			*words = append(*words, model.WordBox{Text: text, Box: box})
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectWords(c, words)
	}
}

// titleBBox parses the "bbox x0 y0 x1 y1" property from an element's
// title attribute.
func titleBBox(n *html.Node) (model.BBox, bool) {
	title := attrValue(n, "title")
	for _, prop := range strings.Split(title, ";") {
		parts := strings.Fields(strings.TrimSpace(prop))
		if len(parts) != 5 || parts[0] != "bbox" {
			continue
		}
		coords := make([]float64, 4)
		ok := true
		for i, p := range parts[1:] {
			v, err := strconv.ParseFloat(p, 64)
			if err != nil {
				ok = false
				break
			}
			coords[i] = v
		}
		if !ok {
			continue
		}
		return model.BBox{
			X:      coords[0],
			Y:      coords[1],
			Width:  coords[2] - coords[0],
			Height: coords[3] - coords[1],
		}, true
	}
	return model.BBox{}, false
}

// hasClass reports whether the element's class attribute contains the
// given class name.
func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrValue(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// textContent returns the concatenated text content of a node subtree.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
