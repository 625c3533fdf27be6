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

type RoadmapNodeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoadmapNodeMapper
}

func NewRoadmapNodeRepository(db *gorm.DB) contract.RoadmapNodeRepository {
	return &RoadmapNodeRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoadmapNodeMapper(),
	}
}

func (r *RoadmapNodeRepositoryImpl) Create(ctx context.Context, node *entity.RoadmapNode) error {
	m := r.mapper.ToModel(node)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*node = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoadmapNodeRepositoryImpl) Update(ctx context.Context, node *entity.RoadmapNode) error {
	m := r.mapper.ToModel(node)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*node = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoadmapNodeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.RoadmapNode{}, id).Error
}

func (r *RoadmapNodeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RoadmapNode, error) {
	var m model.RoadmapNode
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RoadmapNodeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoadmapNode, error) {
	var models []*model.RoadmapNode
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
