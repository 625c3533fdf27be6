package entity

import (
	"time"

	"github.com/google/uuid"
)

type RoadmapNode struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	NodeType    string
	Title       string
	Description string
	Status      string
	ProjectId   *uuid.UUID
	IdeaId      *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
