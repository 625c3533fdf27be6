package model

import (
	"time"

	"github.com/google/uuid"
)

type ProjectFile struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Filename     string    `gorm:"type:varchar(255);not null"`
	OriginalName string    `gorm:"type:varchar(255)"`
	MimeType     string    `gorm:"type:varchar(128)"`
	Size         int64     `gorm:"not null"`
	AdvisorOnly  bool      `gorm:"default:false"`
	Content      []byte    `gorm:"type:bytea"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (ProjectFile) TableName() string {
	return "project_files"
}
