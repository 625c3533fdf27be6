package unitofwork

import (
	"context"

	"advisor-portal-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProjectRepository() contract.ProjectRepository
	AgentIdeaRepository() contract.AgentIdeaRepository
	RoadmapNodeRepository() contract.RoadmapNodeRepository
	ProjectFileRepository() contract.ProjectFileRepository
}
