package parse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/finops-tools/expense-recon/internal/dateutils"
	"github.com/finops-tools/expense-recon/internal/entity"
)

// TierName identifies which pattern strategy produced a record. The
// cascade tries strict first and falls through only when a tier yields
// zero matches across the whole text.
type TierName string

const (
	TierStrict  TierName = "strict"
	TierRelaxed TierName = "relaxed"
	TierMinimal TierName = "minimal"
	TierNone    TierName = "none"
)

const (
	datePat   = `(?:\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}|\d{4}-\d{2}-\d{2})`
	amountPat = `\(?-?\$?\d{1,3}(?:,\d{3})*\.\d{2}\)?(?:\s*(?:CR|DR))?`
	// level and transaction-number tokens always carry a digit; pure words
	// never match, so they cannot swallow the head of a merchant name
	levelPat = `(?:\d{1,3}|[A-Z]\d{1,2})`
	txnumPat = `(?:[A-Z]{0,3}\d[A-Z0-9-]{3,})`
)

// A tier pairs a line pattern with the builder that turns its captures
// into a RawRecord. Tiers are tried in declaration order.
type tier struct {
	name  TierName
	re    *regexp.Regexp
	build func(p *Parser, m map[string]string, line string, lineNo int) (*entity.RawRecord, error)
}

var tiers = []tier{
	{
		name: TierStrict,
		// two dates, level code, transaction number, merchant terminated
		// by comma + region, group label, free description, trailing amount
		re: regexp.MustCompile(`^(?P<txdate>` + datePat + `)\s+(?P<posted>` + datePat + `)\s+` +
			`(?P<level>` + levelPat + `)\s+(?P<txnum>` + txnumPat + `)\s+` +
			`(?P<merchant>.+?),\s*(?P<region>[A-Za-z]{2})\s+` +
			`(?P<group>[A-Z][A-Z&/_-]*)\s+(?P<desc>.+?)\s+` +
			`(?P<amount>` + amountPat + `)$`),
		build: buildStrict,
	},
	{
		name: TierRelaxed,
		// leading date and trailing amount mandatory, everything else
		// optional; merchant must still look like a statement token
		// (uppercase or digit lead) or the line falls through to minimal
		re: regexp.MustCompile(`^(?P<txdate>` + datePat + `)(?:\s+(?P<posted>` + datePat + `))?` +
			`(?:\s+(?P<level>` + levelPat + `))?(?:\s+(?P<txnum>` + txnumPat + `))?\s+` +
			`(?P<merchant>[A-Z0-9][^,]*?)` +
			`(?:,\s*(?P<region>[A-Za-z]{2,3})(?:\s+(?P<group>[A-Z][A-Z&/_-]{2,}))?)?\s+` +
			`(?P<amount>` + amountPat + `)$`),
		build: buildRelaxed,
	},
	{
		name: TierMinimal,
		re: regexp.MustCompile(`^(?P<txdate>` + datePat + `)\s+(?P<merchant>.+?)\s+` +
			`(?P<amount>` + amountPat + `)$`),
		build: buildMinimal,
	},
}

func buildStrict(p *Parser, m map[string]string, line string, _ int) (*entity.RawRecord, error) {
	txDate, err := dateutils.ParseDate(m["txdate"])
	if err != nil {
		return nil, err
	}
	posted, err := dateutils.ParseDate(m["posted"])
	if err != nil {
		return nil, err
	}
	amount, isCredit, err := ParseAmount(m["amount"])
	if err != nil {
		return nil, err
	}
	region := strings.ToUpper(m["region"])
	if !ValidRegion(region) {
		return nil, fmt.Errorf("invalid region code %q", m["region"])
	}
	group := m["group"]
	return &entity.RawRecord{
		TxDate:     txDate,
		PostedDate: &posted,
		Merchant:   CleanMerchant(m["merchant"]),
		Region:     &region,
		Group:      &group,
		Amount:     amount,
		IsCredit:   isCredit,
		Incomplete: false,
		SourceLine: line,
	}, nil
}

func buildRelaxed(p *Parser, m map[string]string, line string, _ int) (*entity.RawRecord, error) {
	txDate, err := dateutils.ParseDate(m["txdate"])
	if err != nil {
		return nil, err
	}
	amount, isCredit, err := ParseAmount(m["amount"])
	if err != nil {
		return nil, err
	}
	rec := &entity.RawRecord{
		TxDate:     txDate,
		Merchant:   CleanMerchant(m["merchant"]),
		Amount:     amount,
		IsCredit:   isCredit,
		SourceLine: line,
	}
	if v := m["posted"]; v != "" {
		posted, err := dateutils.ParseDate(v)
		if err != nil {
			return nil, err
		}
		rec.PostedDate = &posted
	}
	if v := m["region"]; v != "" {
		region := strings.ToUpper(v)
		if ValidRegion(region) || !p.strictRegions {
			rec.Region = &region
		}
	}
	if v := m["group"]; v != "" {
		rec.Group = &v
	}
	// any optional field left unpopulated lowers confidence
	rec.Incomplete = rec.PostedDate == nil || rec.Region == nil || rec.Group == nil ||
		m["level"] == "" || m["txnum"] == ""
	return rec, nil
}

func buildMinimal(p *Parser, m map[string]string, line string, _ int) (*entity.RawRecord, error) {
	txDate, err := dateutils.ParseDate(m["txdate"])
	if err != nil {
		return nil, err
	}
	amount, isCredit, err := ParseAmount(m["amount"])
	if err != nil {
		return nil, err
	}
	return &entity.RawRecord{
		TxDate:     txDate,
		Merchant:   CleanMerchant(m["merchant"]),
		Amount:     amount,
		IsCredit:   isCredit,
		Incomplete: true,
		SourceLine: line,
	}, nil
}

// captures maps a regexp's named groups to their submatch values.
func captures(re *regexp.Regexp, m []string) map[string]string {
	out := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(m) {
			out[name] = m[i]
		}
	}
	return out
}
