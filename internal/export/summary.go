package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/finops-tools/expense-recon/internal/entity"
)

// summarySchema pins the JSON shape handed to downstream consumers; a
// summary that fails validation is a bug in this package, not theirs.
const summarySchema = `{
  "type": "object",
  "required": ["session", "transactions", "receipts", "matches"],
  "properties": {
    "session": {
      "type": "object",
      "required": ["id", "status", "file_count", "tx_count", "receipt_count", "matched_count"],
      "properties": {
        "id": {"type": "string"},
        "status": {"type": "string", "enum": ["UPLOADING", "EXTRACTING", "MATCHING", "COMPLETED", "FAILED"]},
        "file_count": {"type": "integer", "minimum": 0},
        "tx_count": {"type": "integer", "minimum": 0},
        "receipt_count": {"type": "integer", "minimum": 0},
        "matched_count": {"type": "integer", "minimum": 0},
        "last_error": {"type": "string"}
      }
    },
    "employees": {"type": "array", "items": {"type": "object", "required": ["id", "name"]}},
    "transactions": {"type": "array", "items": {"type": "object", "required": ["id", "session_id", "amount"]}},
    "receipts": {"type": "array", "items": {"type": "object", "required": ["id", "session_id", "amount"]}},
    "matches": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "session_id", "basis"],
        "properties": {
          "basis": {"type": "string", "enum": ["EXACT_AMOUNT_DATE", "AMOUNT_DATE_NEAR", "AMOUNT_ONLY", "UNMATCHED"]}
        }
      }
    },
    "file_warnings": {"type": "array", "items": {"type": "string"}}
  }
}`

var compiledSummarySchema = func() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("summary.json", strings.NewReader(summarySchema)); err != nil {
		panic(fmt.Sprintf("add summary schema: %v", err))
	}
	return compiler.MustCompile("summary.json")
}()

// ExportSummaryJSON marshals the session summary and validates it against
// the published schema before returning the bytes.
func (s *Service) ExportSummaryJSON(ctx context.Context, sessionID uuid.UUID) ([]byte, error) {
	start := time.Now()

	summary, err := s.summaries.GetSessionSummary(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load summary: %w", err)
	}

	// a session with no records still publishes empty arrays, never null
	doc := *summary
	if doc.Employees == nil {
		doc.Employees = []entity.Employee{}
	}
	if doc.Transactions == nil {
		doc.Transactions = []entity.Transaction{}
	}
	if doc.Receipts == nil {
		doc.Receipts = []entity.Receipt{}
	}
	if doc.Matches == nil {
		doc.Matches = []entity.MatchResult{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}

	var v any
	if err := json.Unmarshal(buf.Bytes(), &v); err != nil {
		return nil, fmt.Errorf("reparse summary: %w", err)
	}
	if err := compiledSummarySchema.Validate(v); err != nil {
		return nil, fmt.Errorf("summary does not match schema: %w", err)
	}

	s.logger.Info("export.json.ok",
		"session_id", sessionID.String(),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
