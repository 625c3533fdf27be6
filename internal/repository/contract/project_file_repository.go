package contract

import (
	"context"

	"advisor-portal-be/internal/entity"
	"advisor-portal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProjectFileRepository interface {
	Create(ctx context.Context, file *entity.ProjectFile) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProjectFile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProjectFile, error)
}
