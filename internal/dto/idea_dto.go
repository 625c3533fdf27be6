package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ListIdeasResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	AgentType string     `json:"agent_type"`
	Summary   string     `json:"summary"`
	Status    string     `json:"status"`
	ProjectId *uuid.UUID `json:"project_id"`
	CreatedAt time.Time  `json:"created_at"`
}

type ShowIdeaResponse struct {
	Id                     uuid.UUID       `json:"id"`
	Title                  string          `json:"title"`
	AgentType              string          `json:"agent_type"`
	Summary                string          `json:"summary"`
	Status                 string          `json:"status"`
	ProjectId              *uuid.UUID      `json:"project_id"`
	Steps                  []string        `json:"steps"`
	BuildPhases            json.RawMessage `json:"build_phases"`
	AgentStack             json.RawMessage `json:"agent_stack"`
	SecurityConsiderations []string        `json:"security_considerations"`
	ClientRequirements     []string        `json:"client_requirements"`
	ImplementationEstimate json.RawMessage `json:"implementation_estimate"`
	FutureEnhancements     json.RawMessage `json:"future_enhancements"`
	SummaryMessage         string          `json:"summary_message"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              *time.Time      `json:"updated_at"`
}

type CreateIdeaRequest struct {
	Specification       json.RawMessage `json:"specification" validate:"required"`
	ProjectId           *uuid.UUID      `json:"project_id"`
	NodeId              *uuid.UUID      `json:"node_id"`
	ConversationHistory []ChatTurnDto   `json:"conversation_history"`
}

type CreateIdeaResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateIdeaRequest struct {
	Id      uuid.UUID
	Title   string `json:"title" validate:"required"`
	Summary string `json:"summary"`
	Status  string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

type UpdateIdeaResponse struct {
	Id uuid.UUID `json:"id"`
}

type DevPackageResponse struct {
	FileId   uuid.UUID `json:"file_id"`
	FileName string    `json:"file_name"`
	Size     int       `json:"size"`
	Url      string    `json:"url"`
}
