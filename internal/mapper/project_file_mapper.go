package mapper

import (
	"advisor-portal-be/internal/entity"
	"advisor-portal-be/internal/model"
)

type ProjectFileMapper struct{}

func NewProjectFileMapper() *ProjectFileMapper {
	return &ProjectFileMapper{}
}

func (m *ProjectFileMapper) ToEntity(f *model.ProjectFile) *entity.ProjectFile {
	if f == nil {
		return nil
	}
	return &entity.ProjectFile{
		Id:           f.Id,
		ProjectId:    f.ProjectId,
		UserId:       f.UserId,
		Filename:     f.Filename,
		OriginalName: f.OriginalName,
		MimeType:     f.MimeType,
		Size:         f.Size,
		AdvisorOnly:  f.AdvisorOnly,
		Content:      f.Content,
		CreatedAt:    f.CreatedAt,
	}
}

func (m *ProjectFileMapper) ToModel(f *entity.ProjectFile) *model.ProjectFile {
	if f == nil {
		return nil
	}
	return &model.ProjectFile{
		Id:           f.Id,
		ProjectId:    f.ProjectId,
		UserId:       f.UserId,
		Filename:     f.Filename,
		OriginalName: f.OriginalName,
		MimeType:     f.MimeType,
		Size:         f.Size,
		AdvisorOnly:  f.AdvisorOnly,
		Content:      f.Content,
		CreatedAt:    f.CreatedAt,
	}
}

func (m *ProjectFileMapper) ToEntities(files []*model.ProjectFile) []*entity.ProjectFile {
	entities := make([]*entity.ProjectFile, len(files))
	for i, f := range files {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
