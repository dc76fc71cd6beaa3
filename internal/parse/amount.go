package parse

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a statement amount token into a fixed-precision
// decimal plus a credit flag. Credits appear in three shapes across vendor
// formats: a leading minus, parentheses, or a trailing CR token. The
// returned amount is always non-negative; sign lives in isCredit.
func ParseAmount(raw string) (amount decimal.Decimal, isCredit bool, err error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false, fmt.Errorf("empty amount")
	}

	upper := strings.ToUpper(s)
	switch {
	case strings.HasSuffix(upper, "CR"):
		isCredit = true
		s = strings.TrimSpace(s[:len(s)-2])
	case strings.HasSuffix(upper, "DR"):
		s = strings.TrimSpace(s[:len(s)-2])
	}

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isCredit = true
		s = s[1 : len(s)-1]
	}
	if strings.HasPrefix(s, "-") {
		isCredit = true
		s = s[1:]
	}

	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	amount, err = decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if amount.IsNegative() {
		isCredit = true
		amount = amount.Neg()
	}
	return amount.Round(2), isCredit, nil
}
