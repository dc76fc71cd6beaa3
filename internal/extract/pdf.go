package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/finops-tools/expense-recon/internal/common"
)

// PDFExtractor reads the embedded text layer of a PDF. Scanned documents
// without a text layer are rejected rather than OCR'd.
type PDFExtractor struct {
	cfg *model.Configuration
	log *slog.Logger
}

func NewPDFExtractor(log *slog.Logger) *PDFExtractor {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	return &PDFExtractor{cfg: cfg, log: log}
}

func (e *PDFExtractor) Extract(ctx context.Context, filename string, data []byte) (Result, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if len(data) == 0 {
		return Result{}, common.WrapError(common.ErrUnreadablePDF, fmt.Sprintf("%s: empty file", filename))
	}

	rs := bytes.NewReader(data)
	if err := api.Validate(rs, e.cfg); err != nil {
		e.log.Warn("extract.pdf.validate_failed", "session_id", common.SessionIDFromContext(ctx), "file", filename, "err", err)
		return Result{}, common.WrapError(common.ErrUnreadablePDF, fmt.Sprintf("%s: not a valid PDF", filename))
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{}, common.WrapError(common.ErrUnreadablePDF, fmt.Sprintf("%s: %v", filename, err))
	}

	var (
		sb       strings.Builder
		warnings []string
		textful  int
	)
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			warnings = append(warnings, fmt.Sprintf("%s: page %d is empty", filename, i))
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: page %d: %v", filename, i, err))
			continue
		}
		wrote := false
		for _, row := range rows {
			for _, word := range row.Content {
				sb.WriteString(word.S)
				sb.WriteByte(' ')
				wrote = true
			}
			sb.WriteByte('\n')
		}
		if wrote {
			textful++
		}
	}

	if textful == 0 {
		e.log.Warn("extract.pdf.no_text_layer", "session_id", common.SessionIDFromContext(ctx), "file", filename, "pages", pages)
		return Result{}, common.WrapError(common.ErrUnreadablePDF, fmt.Sprintf("%s: no text layer on any of %d pages", filename, pages))
	}

	res := Result{
		Text:     sb.String(),
		Pages:    pages,
		Method:   "pdf-text",
		Duration: time.Since(start),
		Warnings: warnings,
	}
	e.log.Debug("extract.pdf.done",
		"file", filename,
		"pages", pages,
		"chars", len(res.Text),
		"duration", res.Duration)
	return res, nil
}
