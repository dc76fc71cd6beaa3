package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanMerchant(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"already clean", "ACME SUPPLY CO", "ACME SUPPLY CO"},
		{"surrounding whitespace", "  ACME  SUPPLY ", "ACME SUPPLY"},
		{"trailing comma", "ACME SUPPLY,", "ACME SUPPLY"},
		{"doubled glyph corruption", "AACCMMEE", "ACME"},
		{"doubled multi word", "DDEELLTTAA  AAIIRR", "DELTA AIR"},
		{"legitimate double letter kept", "COFFEE HOUSE", "COFFEE HOUSE"},
		{"single char untouched", "A", "A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanMerchant(tt.raw))
		})
	}
}

func TestValidRegion(t *testing.T) {
	assert.True(t, ValidRegion("CA"))
	assert.True(t, ValidRegion("NY"))
	assert.False(t, ValidRegion("ca"))
	assert.False(t, ValidRegion("CAL"))
	assert.False(t, ValidRegion("C1"))
	assert.False(t, ValidRegion(""))
}
