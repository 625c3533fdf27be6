package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByClientID struct {
	ClientID uuid.UUID
}

func (s ByClientID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("client_id = ?", s.ClientID)
}

type StatusIs struct {
	Status string
}

func (s StatusIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// AdvisorVisible keeps files a client must not see out of client reads.
type AdvisorVisible struct {
	IncludeAdvisorOnly bool
}

func (s AdvisorVisible) Apply(db *gorm.DB) *gorm.DB {
	if s.IncludeAdvisorOnly {
		return db
	}
	return db.Where("advisor_only = false")
}
