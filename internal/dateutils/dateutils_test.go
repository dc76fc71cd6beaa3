package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantY   int
		wantM   time.Month
		wantD   int
		wantErr bool
	}{
		{"US format", "01/15/2024", 2024, time.January, 15, false},
		{"US short year", "01/15/24", 2024, time.January, 15, false},
		{"ISO", "2024-01-15", 2024, time.January, 15, false},
		{"European dots", "15.01.2024", 2024, time.January, 15, false},
		{"month name", "Jan 15, 2024", 2024, time.January, 15, false},
		{"padded whitespace", "  01/15/2024 ", 2024, time.January, 15, false},
		{"empty", "", 0, 0, 0, true},
		{"garbage", "not a date", 0, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantY, got.Year())
			assert.Equal(t, tt.wantM, got.Month())
			assert.Equal(t, tt.wantD, got.Day())
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestTruncate(t *testing.T) {
	in := time.Date(2024, time.March, 5, 17, 42, 9, 120, time.FixedZone("X", 3600))
	got := Truncate(in)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, time.March, 5, 23, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.March, 8, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, 3, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2024-03-05", ToISODate(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", ToISODate(time.Time{}))
}
