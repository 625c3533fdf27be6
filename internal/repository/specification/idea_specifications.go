package specification

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByProjectID struct {
	ProjectID uuid.UUID
}

func (s ByProjectID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("project_id = ?", s.ProjectID)
}

// ProjectUnassigned selects prebuilt ideas not yet attached to a project.
type ProjectUnassigned struct{}

func (s ProjectUnassigned) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("project_id IS NULL")
}

type TitleIs struct {
	Title string
}

func (s TitleIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title = ?", s.Title)
}

// TitleLike matches on a title fragment, case-insensitive.
type TitleLike struct {
	Fragment string
}

func (s TitleLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title ILIKE ?", fmt.Sprintf("%%%s%%", s.Fragment))
}

type StatusIn struct {
	Statuses []string
}

func (s StatusIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}
