package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatTurn is one message of a stored draft conversation.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Project struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientId    uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Status      string
	Stage       string
	Eta         *string
	ChatHistory []ChatTurn
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
