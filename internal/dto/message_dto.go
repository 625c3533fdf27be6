package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventEnvelope is the wire format for every message on the pub/sub
// bus. Consumers dispatch on Type before decoding Data.
type EventEnvelope struct {
	Type       string          `json:"type"`
	Data       json.RawMessage `json:"data"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// SpecificationFinalizedMessage is the payload published when an ideation
// conversation produces a stored specification.
type SpecificationFinalizedMessage struct {
	IdeaId    uuid.UUID  `json:"idea_id"`
	UserId    uuid.UUID  `json:"user_id"`
	ProjectId *uuid.UUID `json:"project_id,omitempty"`
	Title     string     `json:"title"`
}
