// Package source provides input-boundary adapters that turn external
// document formats into the word boxes the spatial pipeline consumes.
//
// Three producers are available:
//
//   - [PDFSource] - born-digital PDFs, via the PDF text layer
//   - [HOCRSource] - hOCR files, the HTML-based OCR output format
//   - [TSVSource] - Tesseract's tab-separated word output
//
// All producers implement [Source] and emit [Page] values: the page's word
// boxes plus its dimensions, in top-left-origin coordinates. The pipeline
// itself never performs I/O; these adapters are the only place the module
// touches files.
package source
