package constants

// SessionStatus is the canonical status for rows in sessions.
type SessionStatus string

// Stable values (store these exact strings in DB).
const (
	StatusUploading  SessionStatus = "UPLOADING"  // files being accepted
	StatusExtracting SessionStatus = "EXTRACTING" // extraction + parsing in progress
	StatusMatching   SessionStatus = "MATCHING"   // matching engine running
	StatusCompleted  SessionStatus = "COMPLETED"  // terminal success
	StatusFailed     SessionStatus = "FAILED"     // terminal failure
)

// transitions is the allowed forward edge set. FAILED is reachable from any
// non-terminal state and is handled separately in CanTransition.
var transitions = map[SessionStatus]SessionStatus{
	StatusUploading:  StatusExtracting,
	StatusExtracting: StatusMatching,
	StatusMatching:   StatusCompleted,
}

// SessionStatuses lists every valid status value.
var SessionStatuses = []string{
	string(StatusUploading),
	string(StatusExtracting),
	string(StatusMatching),
	string(StatusCompleted),
	string(StatusFailed),
}

// IsTerminal reports whether s is a sink state.
func (s SessionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransition reports whether from -> to is a legal edge. Statuses are
// monotonic along the graph: no skipping, no leaving a terminal state.
func CanTransition(from, to SessionStatus) bool {
	if from.IsTerminal() {
		return false
	}
	if to == StatusFailed {
		return true
	}
	return transitions[from] == to
}
