package contract

import (
	"context"

	"advisor-portal-be/internal/entity"
	"advisor-portal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AgentIdeaRepository interface {
	Create(ctx context.Context, idea *entity.AgentIdea) error
	Update(ctx context.Context, idea *entity.AgentIdea) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AgentIdea, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentIdea, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
