//go:build ocr

// Package ocr provides OCR (Optical Character Recognition) capabilities
// for producing word boxes from scanned pages.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Scanned-PDF recognition also requires MuPDF (via go-fitz) for page
// rendering.
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
	"golang.org/x/image/draw"

	"github.com/docfield/spatial/model"
	"github.com/docfield/spatial/source"
)

// maxRenderWidth caps the rendered page width before recognition. go-fitz
// renders at 300 DPI, which can produce very large images for oversized
// pages; Tesseract accuracy does not improve past this resolution.
const maxRenderWidth = 2600

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// RecognizeWords performs OCR on image data and returns positioned word
// boxes in top-left-origin pixel coordinates, ready for the spatial
// pipeline.
func (c *Client) RecognizeWords(imageData []byte) ([]model.WordBox, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]model.WordBox, 0, len(boxes))
	for _, b := range boxes {
		text := strings.TrimSpace(b.Word)
		if text == "" {
			continue
		}
		words = append(words, model.NewWordBox(text,
			float64(b.Box.Min.X), float64(b.Box.Min.Y),
			float64(b.Box.Max.X), float64(b.Box.Max.Y)))
	}
	return words, nil
}

// RecognizePDF renders each page of a scanned PDF and recognizes its word
// boxes. Page dimensions are reported in rendered pixels, the same space
// as the word coordinates.
func (c *Client) RecognizePDF(path string) ([]source.Page, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	pages := make([]source.Page, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.Image(i)
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", i+1, err)
		}

		scaled := capWidth(img, maxRenderWidth)

		var buf bytes.Buffer
		if err := png.Encode(&buf, scaled); err != nil {
			return nil, fmt.Errorf("encode page %d: %w", i+1, err)
		}

		words, err := c.RecognizeWords(buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("recognize page %d: %w", i+1, err)
		}

		bounds := scaled.Bounds()
		pages = append(pages, source.Page{
			Number: i + 1,
			Width:  float64(bounds.Dx()),
			Height: float64(bounds.Dy()),
			Words:  words,
		})
	}

	return pages, nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
// See gosseract.PageSegMode constants for available modes.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}

// capWidth downscales an image to at most maxWidth pixels wide, preserving
// the aspect ratio. Images already within the cap pass through untouched.
func capWidth(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth {
		return img
	}

	scale := float64(maxWidth) / float64(bounds.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, int(float64(bounds.Dy())*scale)))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
