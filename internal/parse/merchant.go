package parse

import (
	"regexp"
	"strings"
	"unicode"
)

var merchantSpaceRe = regexp.MustCompile(`\s+`)

// CleanMerchant normalizes a merchant name token. Some vendor text layers
// emit every glyph twice ("AACCMMEE" for "ACME"), a cosmetic corruption
// distinct from a misparse, so doubled-letter runs are collapsed when the
// whole token exhibits the pattern.
func CleanMerchant(raw string) string {
	s := merchantSpaceRe.ReplaceAllString(strings.TrimSpace(raw), " ")
	s = strings.Trim(s, ",")
	if looksDoubled(s) {
		s = collapseDoubled(s)
	}
	return s
}

// looksDoubled reports whether every letter in the token appears as an
// immediate pair. Legitimate names with one doubled letter ("COFFEE") do
// not satisfy this; only wholesale duplication does.
func looksDoubled(s string) bool {
	runes := []rune(s)
	letters := 0
	for i := 0; i < len(runes); {
		r := runes[i]
		if !unicode.IsLetter(r) {
			i++
			continue
		}
		if i+1 >= len(runes) || runes[i+1] != r {
			return false
		}
		letters++
		i += 2
	}
	return letters > 1
}

func collapseDoubled(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i := 0; i < len(runes); {
		r := runes[i]
		b.WriteRune(r)
		if unicode.IsLetter(r) && i+1 < len(runes) && runes[i+1] == r {
			i += 2
			continue
		}
		i++
	}
	return b.String()
}

var regionRe = regexp.MustCompile(`^[A-Z]{2}$`)

// ValidRegion reports whether a token is a plausible 2-letter region code.
func ValidRegion(s string) bool {
	return regionRe.MatchString(s)
}
