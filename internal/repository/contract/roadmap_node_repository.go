package contract

import (
	"context"

	"advisor-portal-be/internal/entity"
	"advisor-portal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RoadmapNodeRepository interface {
	Create(ctx context.Context, node *entity.RoadmapNode) error
	Update(ctx context.Context, node *entity.RoadmapNode) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RoadmapNode, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoadmapNode, error)
}
