package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionForwardEdges(t *testing.T) {
	assert.True(t, CanTransition(StatusUploading, StatusExtracting))
	assert.True(t, CanTransition(StatusExtracting, StatusMatching))
	assert.True(t, CanTransition(StatusMatching, StatusCompleted))

	// no skipping a predecessor
	assert.False(t, CanTransition(StatusUploading, StatusMatching))
	assert.False(t, CanTransition(StatusUploading, StatusCompleted))
	assert.False(t, CanTransition(StatusExtracting, StatusCompleted))

	// no going backwards
	assert.False(t, CanTransition(StatusMatching, StatusExtracting))
	assert.False(t, CanTransition(StatusExtracting, StatusUploading))
}

func TestCanTransitionFailedFromAnyNonTerminal(t *testing.T) {
	for _, from := range []SessionStatus{StatusUploading, StatusExtracting, StatusMatching} {
		assert.True(t, CanTransition(from, StatusFailed), "from %s", from)
	}
}

func TestTerminalStatesAreSinks(t *testing.T) {
	for _, terminal := range []SessionStatus{StatusCompleted, StatusFailed} {
		assert.True(t, terminal.IsTerminal())
		for _, to := range []SessionStatus{StatusUploading, StatusExtracting, StatusMatching, StatusCompleted, StatusFailed} {
			assert.False(t, CanTransition(terminal, to), "%s -> %s", terminal, to)
		}
	}
	assert.False(t, StatusMatching.IsTerminal())
}

func TestMatchBasisIsMatched(t *testing.T) {
	assert.True(t, BasisExactAmountDate.IsMatched())
	assert.True(t, BasisAmountDateNear.IsMatched())
	assert.True(t, BasisAmountOnly.IsMatched())
	assert.False(t, BasisUnmatched.IsMatched())
}
