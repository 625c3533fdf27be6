package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AgentIdea struct {
	Id                     uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId                 uuid.UUID      `gorm:"type:uuid;not null;index"`
	ProjectId              *uuid.UUID     `gorm:"type:uuid;index"`
	Title                  string         `gorm:"type:text;not null"`
	Summary                string         `gorm:"type:text;not null"`
	AgentType              string         `gorm:"type:varchar(64)"`
	Status                 string         `gorm:"type:varchar(32);default:'pending';index"`
	Steps                  datatypes.JSON `gorm:"type:jsonb;not null"`
	BuildPhases            datatypes.JSON `gorm:"type:jsonb"`
	SecurityConsiderations datatypes.JSON `gorm:"type:jsonb"`
	ClientRequirements     datatypes.JSON `gorm:"type:jsonb;not null"`
	SummaryMessage         string         `gorm:"type:text"`
	AgentStack             datatypes.JSON `gorm:"type:jsonb;not null"`
	ImplementationEstimate datatypes.JSON `gorm:"type:jsonb"`
	FutureEnhancements     datatypes.JSON `gorm:"type:jsonb"`
	ConversationHistory    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt              time.Time      `gorm:"autoCreateTime"`
	UpdatedAt              time.Time      `gorm:"autoUpdateTime"`
}

func (AgentIdea) TableName() string {
	return "agent_ideas"
}
