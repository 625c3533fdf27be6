package model

import (
	"time"

	"github.com/google/uuid"
)

type RoadmapNode struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NodeType    string     `gorm:"type:varchar(32);not null"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(32);default:'planned'"`
	ProjectId   *uuid.UUID `gorm:"type:uuid;index"`
	IdeaId      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (RoadmapNode) TableName() string {
	return "roadmap_nodes"
}
