// Package parse recovers an employee name and structured line records from
// raw statement text using a three-tier pattern cascade. A parsing miss is
// a warning, never an error: sessions complete even when a vendor changes
// its layout, and the winning tier is recorded so drift is diagnosable.
package parse

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/finops-tools/expense-recon/constants"
	"github.com/finops-tools/expense-recon/internal/entity"
)

// Result is the outcome of parsing one file's text.
type Result struct {
	EmployeeName string
	Kind         constants.RecordKind
	Records      []*entity.RawRecord
	Tier         TierName
	Warnings     []string
}

type Parser struct {
	strictRegions bool
	log           *slog.Logger
}

// NewParser builds a parser. strictRegions controls whether relaxed-tier
// region tokens must be exact 2-letter codes; vendors disagree on this, so
// it is configuration rather than a hardcoded rule.
func NewParser(strictRegions bool, log *slog.Logger) *Parser {
	return &Parser{strictRegions: strictRegions, log: log}
}

var (
	nameLabelRe = regexp.MustCompile(`(?im)^\s*(?:cardholder|card\s*holder|employee|account\s*holder|name)\s*[:#]\s*(.+?)\s*$`)
	capsNameRe  = regexp.MustCompile(`^[A-Z][A-Za-z'.-]+(?:\s+[A-Z][A-Za-z'.-]+){1,3}$`)
	receiptRe   = regexp.MustCompile(`(?i)\breceipt`)
	lineSpaceRe = regexp.MustCompile(`\s+`)
)

// Parse runs the cascade over the whole text. Tier 1 is tried across every
// line first; only a tier that yields zero records anywhere falls through
// to the next.
func (p *Parser) Parse(filename, text string) Result {
	lines := splitLines(text)
	res := Result{
		EmployeeName: guessEmployeeName(lines, text),
		Kind:         detectKind(filename, text),
		Tier:         TierNone,
	}

	for _, t := range tiers {
		records, warnings := p.applyTier(t, lines)
		// a line that matched a tier's pattern but failed to build is a
		// diagnostic worth keeping even when that tier loses the cascade
		res.Warnings = append(res.Warnings, warnings...)
		if len(records) == 0 {
			continue
		}
		res.Records = records
		res.Tier = t.name
		break
	}

	if res.Tier == TierNone {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%s: no pattern tier matched any line", filename))
		p.log.Warn("parse.miss", "file", filename, "lines", len(lines))
	} else {
		p.log.Info("parse.done",
			"file", filename,
			"tier", string(res.Tier),
			"kind", string(res.Kind),
			"records", len(res.Records),
			"employee", res.EmployeeName)
	}
	for _, rec := range res.Records {
		rec.Kind = res.Kind
	}
	return res
}

func (p *Parser) applyTier(t tier, lines []string) ([]*entity.RawRecord, []string) {
	var (
		records  []*entity.RawRecord
		warnings []string
	)
	for i, line := range lines {
		m := t.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rec, err := t.build(p, captures(t.re, m), line, i+1)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: line %d: %v", t.name, i+1, err))
			continue
		}
		rec.SourceLine = line
		records = append(records, rec)
	}
	return records, warnings
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(lineSpaceRe.ReplaceAllString(l, " "))
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// guessEmployeeName prefers an explicit label line; otherwise the first
// line that looks like a bare personal name.
func guessEmployeeName(lines []string, text string) string {
	if m := nameLabelRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	for _, l := range lines {
		if capsNameRe.MatchString(l) && !strings.ContainsAny(l, "0123456789$") {
			return l
		}
	}
	return ""
}

// detectKind classifies the whole file: a receipt report yields receipt
// records, anything else is treated as a card activity report.
func detectKind(filename, text string) constants.RecordKind {
	header := text
	if len(header) > 2000 {
		header = header[:2000]
	}
	if receiptRe.MatchString(filename) || receiptRe.MatchString(header) {
		return constants.KindReceipt
	}
	return constants.KindTransaction
}
