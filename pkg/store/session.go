package store

import "time"

// Session tracks the in-memory state of an ideation conversation.
type Session struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	State  string `json:"state"` // "GATHERING" | "FINALIZED"

	// Set once the conversation has produced a stored specification.
	SpecificationID string    `json:"specification_id"`
	FinalizedAt     time.Time `json:"finalized_at"`
}

const (
	StateGathering = "GATHERING"
	StateFinalized = "FINALIZED"
)

// Finalized reports whether the session already produced its specification.
// A finalized session must not run the pipeline again.
func (s *Session) Finalized() bool {
	return s.State == StateFinalized
}
