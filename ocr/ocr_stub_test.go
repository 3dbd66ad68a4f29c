//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestStubReturnsNotEnabled(t *testing.T) {
	_, err := New()
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled from New, got %v", err)
	}

	var c *Client
	if err := c.Close(); err != nil {
		t.Errorf("Expected nil from Close on nil client, got %v", err)
	}

	client := &Client{}
	if _, err := client.RecognizeImage(nil); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled from RecognizeImage, got %v", err)
	}
	if _, err := client.RecognizeWords(nil); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled from RecognizeWords, got %v", err)
	}
	if _, err := client.RecognizePDF("scan.pdf"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled from RecognizePDF, got %v", err)
	}
	if err := client.SetLanguage("eng"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled from SetLanguage, got %v", err)
	}
	if err := client.SetPageSegMode(PSM_AUTO); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled from SetPageSegMode, got %v", err)
	}
}
