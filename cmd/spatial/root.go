package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docfield/spatial/internal/config"
	"github.com/docfield/spatial/internal/logger"
	"github.com/docfield/spatial/model"
	"github.com/docfield/spatial/ocr"
	"github.com/docfield/spatial/source"
)

var version = "1.0.0"

var (
	pdfPath  string
	hocrPath string
	tsvPath  string
	scanPath string
	pageNum  int
)

var rootCmd = &cobra.Command{
	Use:   "spatial",
	Short: "Reconstruct document layout as label:value text",
	Long: `spatial turns the word boxes of a document page into a structured
label:value text representation, detecting visual lines, field/value
pairs, and table regions from the words' positions.

Input can be a born-digital PDF (--pdf), an hOCR file (--hocr),
Tesseract TSV output (--tsv), or a scanned PDF recognized with
Tesseract (--scan, requires a build with the ocr tag).`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// cliConfig carries the environment configuration into the commands.
var cliConfig *config.Config

func execute(cfg *config.Config) error {
	cliConfig = cfg
	if err := rootCmd.Execute(); err != nil {
		log := logger.WithComponent("cmd")
		log.Error().Err(err).Msg("Command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&pdfPath, "pdf", "", "born-digital PDF input")
	rootCmd.PersistentFlags().StringVar(&hocrPath, "hocr", "", "hOCR input")
	rootCmd.PersistentFlags().StringVar(&tsvPath, "tsv", "", "Tesseract TSV input")
	rootCmd.PersistentFlags().StringVar(&scanPath, "scan", "", "scanned PDF input (requires ocr build tag)")
	rootCmd.PersistentFlags().IntVar(&pageNum, "page", 1, "1-based page to process")
}

// loadWords resolves the input flags to one page's word boxes.
func loadWords() ([]model.WordBox, error) {
	pages, err := loadPages()
	if err != nil {
		return nil, err
	}
	for _, p := range pages {
		if p.Number == pageNum {
			return p.Words, nil
		}
	}
	return nil, fmt.Errorf("page %d not found (%d pages extracted)", pageNum, len(pages))
}

func loadPages() ([]source.Page, error) {
	switch {
	case pdfPath != "":
		return source.NewPDFSource(pdfPath).Pages()
	case hocrPath != "":
		src, closer, err := source.OpenHOCR(hocrPath)
		if err != nil {
			return nil, err
		}
		defer closer.Close()
		return src.Pages()
	case tsvPath != "":
		f, err := os.Open(tsvPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return source.NewTSVSource(f).Pages()
	case scanPath != "":
		client, err := ocr.New()
		if err != nil {
			return nil, err
		}
		defer client.Close()
		return client.RecognizePDF(scanPath)
	default:
		return nil, fmt.Errorf("no input: use --pdf, --hocr, --tsv, or --scan")
	}
}
