package dto

import (
	"github.com/google/uuid"
)

// ChatTurnDto mirrors the wire shape of a single conversation turn.
type ChatTurnDto struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content"`
}

type IdeatorChatRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []ChatTurnDto `json:"conversation_history"`
	Finalize            bool          `json:"finalize"`
	SessionId           string        `json:"session_id"`
	ProjectId           *uuid.UUID    `json:"project_id"`
	NodeId              *uuid.UUID    `json:"node_id"`
}

// IdeatorFinalizeResponse is the single JSON frame returned when a
// conversation produces a stored specification instead of a stream.
type IdeatorFinalizeResponse struct {
	Response        string                 `json:"response"`
	Complete        bool                   `json:"complete"`
	Specification   map[string]interface{} `json:"specification"`
	SpecificationId string                 `json:"specification_id,omitempty"`
	Error           string                 `json:"error,omitempty"`
}

type PublicChatRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []ChatTurnDto `json:"conversation_history"`
}
