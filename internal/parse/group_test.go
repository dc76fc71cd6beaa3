package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGroup(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"TRAVEL", "TRAVEL"},
		{"AIRFARE", "TRAVEL"},
		{"hotel", "LODGING"},
		{"RESTAURANTS", "MEALS"},
		{"OFFICE", "SUPPLIES"},
		{"TAXI", "GROUND_TRANSPORT"},
		{"SAAS", "SOFTWARE"},
		{"MISC", "OTHER"},
		{" dining ", "MEALS"},
		{"R&D", "R&D"},
		{"widgets", "WIDGETS"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeGroup(tt.raw), "raw=%q", tt.raw)
	}
}
