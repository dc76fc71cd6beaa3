package entity

// SessionSummary is the read contract handed to the report-rendering
// collaborator once a session is terminal.
type SessionSummary struct {
	Session      Session       `json:"session"`
	Employees    []Employee    `json:"employees"`
	Transactions []Transaction `json:"transactions"`
	Receipts     []Receipt     `json:"receipts"`
	Matches      []MatchResult `json:"matches"`
	FileWarnings []string      `json:"file_warnings,omitempty"`
}
