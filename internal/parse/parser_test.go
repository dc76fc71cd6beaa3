package parse

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finops-tools/expense-recon/constants"
)

func newTestParser(strict bool) *Parser {
	return NewParser(strict, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

const strictActivityText = `Corporate Card Activity Statement
Cardholder: JANE DOE
01/15/2024 01/16/2024 01 TXN4415-22 ACME SUPPLY CO, CA TRAVEL Office chairs $1,234.56
01/17/2024 01/18/2024 01 TXN4415-23 DELTA AIR, GA AIRFARE Flight home $420.00
01/20/2024 01/21/2024 01 TXN4415-24 STARBUCKS, WA MEALS Team coffee (15.00)
`

func TestParseStrictTier(t *testing.T) {
	p := newTestParser(false)
	res := p.Parse("activity.pdf", strictActivityText)

	assert.Equal(t, TierStrict, res.Tier)
	assert.Equal(t, "JANE DOE", res.EmployeeName)
	assert.Equal(t, constants.KindTransaction, res.Kind)
	require.Len(t, res.Records, 3)

	first := res.Records[0]
	assert.Equal(t, "ACME SUPPLY CO", first.Merchant)
	assert.Equal(t, "1234.56", first.Amount.String())
	require.NotNil(t, first.Region)
	assert.Equal(t, "CA", *first.Region)
	require.NotNil(t, first.Group)
	assert.Equal(t, "TRAVEL", *first.Group)
	require.NotNil(t, first.PostedDate)
	assert.False(t, first.IsCredit)

	credit := res.Records[2]
	assert.True(t, credit.IsCredit)
	assert.Equal(t, "15", credit.Amount.String())

	// strict tier never produces low-confidence records
	for _, rec := range res.Records {
		assert.False(t, rec.Incomplete, "line %q", rec.SourceLine)
		assert.Equal(t, constants.KindTransaction, rec.Kind)
	}
}

func TestParseRelaxedTier(t *testing.T) {
	text := `Employee: SAM SPADE
02/10/2024 OFFICE DEPOT, TX SUPPLIES $89.10
02/12/2024 UBER TRIP $23.40
`
	p := newTestParser(false)
	res := p.Parse("activity.pdf", text)

	assert.Equal(t, TierRelaxed, res.Tier)
	assert.Equal(t, "SAM SPADE", res.EmployeeName)
	require.Len(t, res.Records, 2)

	withRegion := res.Records[0]
	assert.Equal(t, "OFFICE DEPOT", withRegion.Merchant)
	require.NotNil(t, withRegion.Region)
	assert.Equal(t, "TX", *withRegion.Region)
	require.NotNil(t, withRegion.Group)
	assert.Equal(t, "SUPPLIES", *withRegion.Group)
	assert.True(t, withRegion.Incomplete, "missing posted date and txnum")

	bare := res.Records[1]
	assert.Equal(t, "UBER TRIP", bare.Merchant)
	assert.Nil(t, bare.Region)
	assert.True(t, bare.Incomplete)
}

func TestParseMinimalTier(t *testing.T) {
	text := "03/01/2024 corner cafe 12.00\n"
	p := newTestParser(false)
	res := p.Parse("activity.pdf", text)

	assert.Equal(t, TierMinimal, res.Tier)
	require.Len(t, res.Records, 1)
	rec := res.Records[0]
	assert.Equal(t, "corner cafe", rec.Merchant)
	assert.Equal(t, "12", rec.Amount.String())
	assert.True(t, rec.Incomplete)
}

func TestParseKeepsWarningsFromLosingTiers(t *testing.T) {
	// the first line matches the strict pattern but carries an impossible
	// date; strict yields zero records and the relaxed tier wins, yet the
	// bad line must still leave a diagnostic
	text := `Cardholder: JANE DOE
13/45/2024 01/16/2024 01 TXN4415-22 ACME SUPPLY CO, CA TRAVEL Office chairs $1,234.56
02/12/2024 UBER TRIP $23.40
`
	p := newTestParser(false)
	res := p.Parse("activity.pdf", text)

	assert.Equal(t, TierRelaxed, res.Tier)
	require.Len(t, res.Records, 1)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "strict")
	assert.Contains(t, res.Warnings[0], "line 2")
}

func TestParseMissIsWarningNotError(t *testing.T) {
	p := newTestParser(false)
	res := p.Parse("garbled.pdf", "hello world\nnothing resembling a statement line\n")

	assert.Equal(t, TierNone, res.Tier)
	assert.Empty(t, res.Records)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "no pattern tier matched")
}

func TestParseReceiptKindDetection(t *testing.T) {
	p := newTestParser(false)

	byHeader := p.Parse("report.pdf", "EXPENSE RECEIPT REPORT\nEmployee: JANE DOE\n01/15/2024 ACME SUPPLY CO $1,234.56\n")
	assert.Equal(t, constants.KindReceipt, byHeader.Kind)
	for _, rec := range byHeader.Records {
		assert.Equal(t, constants.KindReceipt, rec.Kind)
	}

	byFilename := p.Parse("receipts-march.pdf", "Employee: JANE DOE\n01/15/2024 ACME SUPPLY CO $1,234.56\n")
	assert.Equal(t, constants.KindReceipt, byFilename.Kind)
}

func TestParseStrictRegionToggle(t *testing.T) {
	// three-letter token is a plausible region only in lenient mode
	text := "Employee: SAM SPADE\n02/10/2024 OFFICE DEPOT, Tex SUPPLIES $89.10\n"

	lenient := newTestParser(false).Parse("activity.pdf", text)
	require.Len(t, lenient.Records, 1)
	require.NotNil(t, lenient.Records[0].Region)
	assert.Equal(t, "TEX", *lenient.Records[0].Region)

	strict := newTestParser(true).Parse("activity.pdf", text)
	require.Len(t, strict.Records, 1)
	assert.Nil(t, strict.Records[0].Region)
	assert.True(t, strict.Records[0].Incomplete)
}

func TestParseDeterministic(t *testing.T) {
	p := newTestParser(false)
	a := p.Parse("activity.pdf", strictActivityText)
	b := p.Parse("activity.pdf", strictActivityText)
	require.Equal(t, len(a.Records), len(b.Records))
	for i := range a.Records {
		assert.Equal(t, *a.Records[i], *b.Records[i])
	}
}
