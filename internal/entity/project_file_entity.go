package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProjectFile struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectId    uuid.UUID `gorm:"type:uuid;index"`
	UserId       uuid.UUID `gorm:"type:uuid;index"`
	Filename     string
	OriginalName string
	MimeType     string
	Size         int64
	AdvisorOnly  bool
	Content      []byte
	CreatedAt    time.Time
}
