package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"advisor-portal-be/pkg/ai/spec"
)

// AgentIdea is a persisted specification artifact. The structured
// sections the portal renders are typed; provider-specific extras
// (agent_stack, estimates, enhancements) stay as raw JSON.
type AgentIdea struct {
	Id                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId                 uuid.UUID `gorm:"type:uuid;index"`
	ProjectId              *uuid.UUID
	Title                  string
	Summary                string
	AgentType              string
	Status                 string
	Steps                  []string
	BuildPhases            []spec.BuildPhase
	SecurityConsiderations []string
	ClientRequirements     []string
	SummaryMessage         string
	AgentStack             json.RawMessage
	ImplementationEstimate json.RawMessage
	FutureEnhancements     json.RawMessage
	ConversationHistory    []ChatTurn
	CreatedAt              time.Time
	UpdatedAt              *time.Time
}
