// Package dateutils parses and normalizes the date formats that appear in
// card activity and receipt report PDFs.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	LayoutISO      = "2006-01-02"
	LayoutUS       = "01/02/2006"
	LayoutUSShort  = "01/02/06"
	LayoutEuropean = "02.01.2006"
)

// StatementFormats lists the layouts observed in vendor statements, most
// common first. Order matters: the first layout that parses wins.
var StatementFormats = []string{
	LayoutUS,
	LayoutUSShort,
	LayoutISO,
	LayoutEuropean,
	"01-02-2006",
	"2006/01/02",
	"Jan 2, 2006",
	"02 Jan 2006",
	"January 2, 2006",
}

var spaceRe = regexp.MustCompile(`\s+`)

// Clean trims and collapses whitespace in a raw date token.
func Clean(s string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// ParseDate tries each statement layout in order and returns the parsed
// date truncated to day precision in UTC.
func ParseDate(s string) (time.Time, error) {
	s = Clean(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}
	for _, layout := range StatementFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return Truncate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %q", s)
}

// Truncate drops the time-of-day component, keeping UTC day precision.
// Matching compares dates at day granularity only.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the absolute whole-day distance between two dates.
func DaysBetween(a, b time.Time) int {
	d := Truncate(a).Sub(Truncate(b))
	if d < 0 {
		d = -d
	}
	return int(d / (24 * time.Hour))
}

// ToISODate formats a date as YYYY-MM-DD for reports and logs.
func ToISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(LayoutISO)
}
