package mapper

import (
	"encoding/json"
	"time"

	"advisor-portal-be/internal/entity"
	"advisor-portal-be/internal/model"
	"advisor-portal-be/pkg/ai/spec"

	"gorm.io/datatypes"
)

type AgentIdeaMapper struct{}

func NewAgentIdeaMapper() *AgentIdeaMapper {
	return &AgentIdeaMapper{}
}

func (m *AgentIdeaMapper) ToEntity(a *model.AgentIdea) *entity.AgentIdea {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	var steps []string
	_ = json.Unmarshal(a.Steps, &steps)

	var phases []spec.BuildPhase
	if len(a.BuildPhases) > 0 {
		_ = json.Unmarshal(a.BuildPhases, &phases)
	}

	var security []string
	if len(a.SecurityConsiderations) > 0 {
		_ = json.Unmarshal(a.SecurityConsiderations, &security)
	}

	var requirements []string
	_ = json.Unmarshal(a.ClientRequirements, &requirements)

	var history []entity.ChatTurn
	if len(a.ConversationHistory) > 0 {
		_ = json.Unmarshal(a.ConversationHistory, &history)
	}

	return &entity.AgentIdea{
		Id:                     a.Id,
		UserId:                 a.UserId,
		ProjectId:              a.ProjectId,
		Title:                  a.Title,
		Summary:                a.Summary,
		AgentType:              a.AgentType,
		Status:                 a.Status,
		Steps:                  steps,
		BuildPhases:            phases,
		SecurityConsiderations: security,
		ClientRequirements:     requirements,
		SummaryMessage:         a.SummaryMessage,
		AgentStack:             rawOrEmpty(a.AgentStack),
		ImplementationEstimate: rawOrEmpty(a.ImplementationEstimate),
		FutureEnhancements:     rawOrEmpty(a.FutureEnhancements),
		ConversationHistory:    history,
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              updatedAt,
	}
}

func (m *AgentIdeaMapper) ToModel(a *entity.AgentIdea) *model.AgentIdea {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.AgentIdea{
		Id:                     a.Id,
		UserId:                 a.UserId,
		ProjectId:              a.ProjectId,
		Title:                  a.Title,
		Summary:                a.Summary,
		AgentType:              a.AgentType,
		Status:                 a.Status,
		Steps:                  marshalJSON(a.Steps),
		BuildPhases:            marshalJSON(a.BuildPhases),
		SecurityConsiderations: marshalJSON(a.SecurityConsiderations),
		ClientRequirements:     marshalJSON(a.ClientRequirements),
		SummaryMessage:         a.SummaryMessage,
		AgentStack:             datatypes.JSON(rawOrEmpty(a.AgentStack)),
		ImplementationEstimate: datatypes.JSON(rawOrEmpty(a.ImplementationEstimate)),
		FutureEnhancements:     datatypes.JSON(rawOrEmpty(a.FutureEnhancements)),
		ConversationHistory:    marshalJSON(a.ConversationHistory),
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              updatedAt,
	}
}

func (m *AgentIdeaMapper) ToEntities(ideas []*model.AgentIdea) []*entity.AgentIdea {
	entities := make([]*entity.AgentIdea, len(ideas))
	for i, a := range ideas {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func marshalJSON(v interface{}) datatypes.JSON {
	encoded, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(encoded)
}

func rawOrEmpty(raw []byte) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("{}")
	}
	return json.RawMessage(raw)
}
