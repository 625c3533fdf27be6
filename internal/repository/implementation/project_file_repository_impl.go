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

type ProjectFileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProjectFileMapper
}

func NewProjectFileRepository(db *gorm.DB) contract.ProjectFileRepository {
	return &ProjectFileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProjectFileMapper(),
	}
}

func (r *ProjectFileRepositoryImpl) Create(ctx context.Context, file *entity.ProjectFile) error {
	m := r.mapper.ToModel(file)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*file = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProjectFileRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ProjectFile{}, id).Error
}

func (r *ProjectFileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProjectFile, error) {
	var m model.ProjectFile
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProjectFileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProjectFile, error) {
	var models []*model.ProjectFile
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
