package mapper

import (
	"time"

	"advisor-portal-be/internal/entity"
	"advisor-portal-be/internal/model"
)

type RoadmapNodeMapper struct{}

func NewRoadmapNodeMapper() *RoadmapNodeMapper {
	return &RoadmapNodeMapper{}
}

func (m *RoadmapNodeMapper) ToEntity(n *model.RoadmapNode) *entity.RoadmapNode {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	return &entity.RoadmapNode{
		Id:          n.Id,
		NodeType:    n.NodeType,
		Title:       n.Title,
		Description: n.Description,
		Status:      n.Status,
		ProjectId:   n.ProjectId,
		IdeaId:      n.IdeaId,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *RoadmapNodeMapper) ToModel(n *entity.RoadmapNode) *model.RoadmapNode {
	if n == nil {
		return nil
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.RoadmapNode{
		Id:          n.Id,
		NodeType:    n.NodeType,
		Title:       n.Title,
		Description: n.Description,
		Status:      n.Status,
		ProjectId:   n.ProjectId,
		IdeaId:      n.IdeaId,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *RoadmapNodeMapper) ToEntities(nodes []*model.RoadmapNode) []*entity.RoadmapNode {
	entities := make([]*entity.RoadmapNode, len(nodes))
	for i, n := range nodes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
