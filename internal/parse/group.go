package parse

import "strings"

// knownGroups maps the expense-group tokens seen on card statements to the
// canonical category names the report uses. Statements are inconsistent
// about naming (AIRFARE vs AIR vs TRAVEL), so everything funnels through
// this table.
var knownGroups = map[string]string{
	"TRAVEL":        "TRAVEL",
	"AIR":           "TRAVEL",
	"AIRFARE":       "TRAVEL",
	"AIRLINE":       "TRAVEL",
	"LODGING":       "LODGING",
	"HOTEL":         "LODGING",
	"HOTELS":        "LODGING",
	"MEALS":         "MEALS",
	"DINING":        "MEALS",
	"RESTAURANT":    "MEALS",
	"RESTAURANTS":   "MEALS",
	"FOOD":          "MEALS",
	"SUPPLIES":      "SUPPLIES",
	"OFFICE":        "SUPPLIES",
	"FUEL":          "FUEL",
	"GAS":           "FUEL",
	"TRANSPORT":     "GROUND_TRANSPORT",
	"TAXI":          "GROUND_TRANSPORT",
	"RIDESHARE":     "GROUND_TRANSPORT",
	"PARKING":       "GROUND_TRANSPORT",
	"SOFTWARE":      "SOFTWARE",
	"SAAS":          "SOFTWARE",
	"SUBSCRIPTIONS": "SOFTWARE",
	"TELECOM":       "TELECOM",
	"PHONE":         "TELECOM",
	"ENTERTAINMENT": "ENTERTAINMENT",
	"MISC":          "OTHER",
	"OTHER":         "OTHER",
}

// NormalizeGroup canonicalizes a captured expense-group token. Unknown
// tokens pass through uppercased so an unfamiliar statement vocabulary
// still groups consistently within itself.
func NormalizeGroup(raw string) string {
	token := strings.ToUpper(strings.Trim(strings.TrimSpace(raw), "&/_-"))
	if canonical, ok := knownGroups[token]; ok {
		return canonical
	}
	return token
}
