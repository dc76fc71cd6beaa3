package constants

// MatchBasis records how a transaction/receipt pairing was decided.
type MatchBasis string

// Stable values (store these exact strings in DB). Ordered from strongest
// to weakest; the matching engine tries them in this order.
const (
	BasisExactAmountDate MatchBasis = "EXACT_AMOUNT_DATE" // amount and date both equal
	BasisAmountDateNear  MatchBasis = "AMOUNT_DATE_NEAR"  // amount equal, date within tolerance
	BasisAmountOnly      MatchBasis = "AMOUNT_ONLY"       // amount equal, date unconstrained
	BasisUnmatched       MatchBasis = "UNMATCHED"         // no counterpart found
)

// MatchBases lists every valid basis value.
var MatchBases = []string{
	string(BasisExactAmountDate),
	string(BasisAmountDateNear),
	string(BasisAmountOnly),
	string(BasisUnmatched),
}

// IsMatched reports whether the basis represents a decided pairing.
func (b MatchBasis) IsMatched() bool {
	return b != BasisUnmatched
}
