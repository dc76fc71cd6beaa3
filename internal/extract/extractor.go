// Package extract turns uploaded statement files into raw text for the
// field parser. The only supported source format is text-layer PDF.
package extract

import (
	"context"
	"time"
)

// TextExtractor is stage 1 of the pipeline: file bytes -> text.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, data []byte) (Result, error)
}

// Result carries the extracted text plus provenance for logging and the
// session summary.
type Result struct {
	Text     string
	Pages    int
	Method   string // "pdf-text"
	Duration time.Duration
	Warnings []string
}
