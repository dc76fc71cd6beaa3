package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     string
		isCredit bool
		wantErr  bool
	}{
		{"plain", "123.45", "123.45", false, false},
		{"dollar sign", "$123.45", "123.45", false, false},
		{"thousands separator", "$1,234.56", "1234.56", false, false},
		{"leading minus", "-42.00", "42", true, false},
		{"minus with dollar", "-$42.00", "42", true, false},
		{"parentheses", "(15.00)", "15", true, false},
		{"parentheses with dollar", "($15.00)", "15", true, false},
		{"CR suffix", "99.99 CR", "99.99", true, false},
		{"DR suffix", "99.99 DR", "99.99", false, false},
		{"lowercase cr", "99.99 cr", "99.99", true, false},
		{"empty", "", "", false, true},
		{"garbage", "abc", "", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, isCredit, err := ParseAmount(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, amount.String())
			assert.Equal(t, tt.isCredit, isCredit)
		})
	}
}

func TestParseAmountNeverNegative(t *testing.T) {
	for _, raw := range []string{"-7.50", "(7.50)", "7.50 CR", "-$7.50"} {
		amount, isCredit, err := ParseAmount(raw)
		require.NoError(t, err)
		assert.False(t, amount.IsNegative(), "amount from %q must be unsigned", raw)
		assert.True(t, isCredit, "credit flag carries the sign for %q", raw)
	}
}
