package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrExtraction matches every failure returned by Text.
	ErrExtraction = errors.New("pdf extraction failed")
	// ErrEmptyDocument is returned for zero-length input.
	ErrEmptyDocument = errors.New("empty document")
)

// ExtractionError reports why a document could not be read as a PDF.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("could not read PDF: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrExtraction) match any ExtractionError.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}

// Text returns the lowercased text of every non-empty page, pages joined by a
// single space.
func Text(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", &ExtractionError{Err: ErrEmptyDocument}
	}

	pages, err := pageTexts(data)
	if err != nil {
		return "", &ExtractionError{Err: err}
	}
	return strings.ToLower(strings.Join(pages, " ")), nil
}

// pageTexts recovers from parser panics, which ledongthuc/pdf raises on some
// malformed object graphs.
func pageTexts(data []byte) (pages []string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
			err = fmt.Errorf("malformed pdf: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	total := reader.NumPage()
	pages = make([]string, 0, total)
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		// GetPlainText starts every Td line move with "\n".
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}
