package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"advisor-portal-be/internal/entity"
	"advisor-portal-be/pkg/ai/spec"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAgentIdeaMapperRoundTrip(t *testing.T) {
	m := NewAgentIdeaMapper()
	projectId := uuid.New()
	now := time.Now()

	original := &entity.AgentIdea{
		Id:                     uuid.New(),
		UserId:                 uuid.New(),
		ProjectId:              &projectId,
		Title:                  "Invoice Chaser",
		Summary:                "Chases overdue invoices automatically.",
		AgentType:              "automation",
		Status:                 "pending",
		Steps:                  []string{"Ingest", "Classify", "Notify"},
		BuildPhases:            []spec.BuildPhase{{Phase: "Discovery", Duration: "1 week"}},
		SecurityConsiderations: []string{"PII redaction in logs"},
		ClientRequirements:     []string{"Accounting system API access"},
		SummaryMessage:         "Great! Your spec is ready.",
		AgentStack:             json.RawMessage(`{"llm":"gemini"}`),
		ConversationHistory:    []entity.ChatTurn{{Role: "user", Content: "chase my invoices"}},
		CreatedAt:              now,
	}

	got := m.ToEntity(m.ToModel(original))

	assert.Equal(t, original.Id, got.Id)
	assert.Equal(t, original.ProjectId, got.ProjectId)
	assert.Equal(t, original.Steps, got.Steps)
	assert.Equal(t, original.BuildPhases, got.BuildPhases)
	assert.Equal(t, original.SecurityConsiderations, got.SecurityConsiderations)
	assert.Equal(t, original.SummaryMessage, got.SummaryMessage)
	assert.JSONEq(t, `{"llm":"gemini"}`, string(got.AgentStack))
	assert.Equal(t, original.ConversationHistory, got.ConversationHistory)
}

func TestAgentIdeaMapperEmptyRawSectionsDefaultToObject(t *testing.T) {
	m := NewAgentIdeaMapper()

	got := m.ToEntity(m.ToModel(&entity.AgentIdea{
		Id:     uuid.New(),
		UserId: uuid.New(),
		Title:  "Bare Idea",
	}))

	assert.Equal(t, json.RawMessage("{}"), got.AgentStack)
	assert.Equal(t, json.RawMessage("{}"), got.ImplementationEstimate)
	assert.Nil(t, got.ProjectId)
}
