package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDraftRequest struct {
	Name        string        `json:"name" validate:"required"`
	ChatHistory []ChatTurnDto `json:"chat_history"`
}

type CreateDraftResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateDraftRequest struct {
	Id          uuid.UUID
	Name        string        `json:"name"`
	ChatHistory []ChatTurnDto `json:"chat_history"`
}

type UpdateDraftResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowDraftResponse struct {
	Id          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Status      string        `json:"status"`
	ChatHistory []ChatTurnDto `json:"chat_history"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at"`
}
