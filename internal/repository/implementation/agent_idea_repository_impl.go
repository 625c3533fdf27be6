package implementation

import (
	"context"
	"errors"

	"advisor-portal-be/internal/entity"
	"advisor-portal-be/internal/mapper"
	"advisor-portal-be/internal/model"
	"advisor-portal-be/internal/repository/contract"
	"advisor-portal-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AgentIdeaRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AgentIdeaMapper
}

func NewAgentIdeaRepository(db *gorm.DB) contract.AgentIdeaRepository {
	return &AgentIdeaRepositoryImpl{
		db:     db,
		mapper: mapper.NewAgentIdeaMapper(),
	}
}

func (r *AgentIdeaRepositoryImpl) Create(ctx context.Context, idea *entity.AgentIdea) error {
	m := r.mapper.ToModel(idea)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*idea = *r.mapper.ToEntity(m)
	return nil
}

func (r *AgentIdeaRepositoryImpl) Update(ctx context.Context, idea *entity.AgentIdea) error {
	m := r.mapper.ToModel(idea)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*idea = *r.mapper.ToEntity(m)
	return nil
}

func (r *AgentIdeaRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.AgentIdea{}, id).Error
}

func (r *AgentIdeaRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AgentIdea, error) {
	var m model.AgentIdea
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AgentIdeaRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentIdea, error) {
	var models []*model.AgentIdea
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AgentIdeaRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.AgentIdea{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
