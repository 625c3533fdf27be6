package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"advisor-portal-be/internal/constant"
	"advisor-portal-be/internal/dto"
	"advisor-portal-be/internal/entity"
	"advisor-portal-be/internal/pkg/logger"
	"advisor-portal-be/internal/repository/memory"
	"advisor-portal-be/internal/repository/specification"
	"advisor-portal-be/internal/repository/unitofwork"
	"advisor-portal-be/pkg/ai/ideator"
	"advisor-portal-be/pkg/ai/spec"
	"advisor-portal-be/pkg/events"
	"advisor-portal-be/pkg/llm"

	"github.com/google/uuid"
)

// ErrSessionFinalized rejects a second finalize on the same session id.
var ErrSessionFinalized = errors.New("conversation already finalized")

type IIdeatorService interface {
	Chat(ctx context.Context, userId uuid.UUID, req *dto.IdeatorChatRequest) (*ideator.TurnResult, error)
}

type ideatorService struct {
	orchestratorFor  func(store ideator.SpecificationStore) *ideator.Orchestrator
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	sessions         *memory.SessionRepository
	log              logger.ILogger
}

func NewIdeatorService(
	cfg ideator.Config,
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	sessions *memory.SessionRepository,
	log logger.ILogger,
) IIdeatorService {
	return &ideatorService{
		orchestratorFor: func(store ideator.SpecificationStore) *ideator.Orchestrator {
			turnCfg := cfg
			turnCfg.Store = store
			return ideator.New(turnCfg)
		},
		uowFactory:       uowFactory,
		publisherService: publisherService,
		sessions:         sessions,
		log:              log,
	}
}

func (s *ideatorService) Chat(ctx context.Context, userId uuid.UUID, req *dto.IdeatorChatRequest) (*ideator.TurnResult, error) {
	if req.SessionId != "" && s.sessions.IsFinalized(req.SessionId) {
		return nil, ErrSessionFinalized
	}

	history := toMessages(req.ConversationHistory)

	// The store captures the turn's conversation so the persisted idea
	// keeps the dialogue that produced it.
	store := &specificationStore{
		uowFactory:       s.uowFactory,
		publisherService: s.publisherService,
		log:              s.log,
		history:          historyWithLatest(req.ConversationHistory, req.Message),
	}

	result, err := s.orchestratorFor(store).HandleTurn(ctx, ideator.TurnRequest{
		OwnerID:  userId,
		History:  history,
		Message:  req.Message,
		Finalize: req.Finalize,
		Refs: ideator.ParentRefs{
			ProjectID: req.ProjectId,
			NodeID:    req.NodeId,
		},
	})
	if result != nil && result.Final != nil && req.SessionId != "" && result.Final.SpecificationID != "" {
		s.sessions.MarkFinalized(req.SessionId, userId.String(), result.Final.SpecificationID)
	}
	return result, err
}

func toMessages(turns []dto.ChatTurnDto) []llm.Message {
	messages := make([]llm.Message, 0, len(turns))
	for _, t := range turns {
		messages = append(messages, llm.Message{Role: t.Role, Content: t.Content})
	}
	return messages
}

func historyWithLatest(turns []dto.ChatTurnDto, message string) []entity.ChatTurn {
	history := make([]entity.ChatTurn, 0, len(turns)+1)
	for _, t := range turns {
		history = append(history, entity.ChatTurn{Role: t.Role, Content: t.Content})
	}
	if message != "" {
		history = append(history, entity.ChatTurn{Role: constant.ChatMessageRoleUser, Content: message})
	}
	return history
}

// specificationStore persists a finalized artifact and links it to its
// parent project and roadmap node when the turn supplied one.
type specificationStore struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
	history          []entity.ChatTurn
}

func (st *specificationStore) Save(ctx context.Context, artifact *spec.Artifact, ownerID uuid.UUID, refs ideator.ParentRefs) (string, error) {
	uow := st.uowFactory.NewUnitOfWork(ctx)

	idea := &entity.AgentIdea{
		Id:                     uuid.New(),
		UserId:                 ownerID,
		ProjectId:              refs.ProjectID,
		Title:                  artifact.Title,
		Summary:                artifact.Summary,
		AgentType:              artifact.AgentType,
		Status:                 constant.IdeaStatusPending,
		Steps:                  artifact.Steps,
		BuildPhases:            artifact.BuildPhases,
		SecurityConsiderations: artifact.SecurityConsiderations,
		ClientRequirements:     artifact.ClientRequirements,
		SummaryMessage:         artifact.SummaryMessage,
		AgentStack:             extraSection(artifact, "agent_stack"),
		ImplementationEstimate: extraSection(artifact, "implementation_estimate"),
		FutureEnhancements:     extraSection(artifact, "future_enhancements"),
		ConversationHistory:    st.history,
		CreatedAt:              time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return "", err
	}
	defer uow.Rollback()

	if err := uow.AgentIdeaRepository().Create(ctx, idea); err != nil {
		return "", err
	}

	if refs.ProjectID != nil {
		if err := st.moveProjectToScoping(ctx, uow, *refs.ProjectID); err != nil {
			return "", err
		}
	}

	if refs.NodeID != nil {
		if err := st.linkRoadmapNode(ctx, uow, *refs.NodeID, idea.Id); err != nil {
			return "", err
		}
	}

	if err := uow.Commit(); err != nil {
		return "", err
	}

	st.publishFinalized(ctx, idea)
	return idea.Id.String(), nil
}

func (st *specificationStore) moveProjectToScoping(ctx context.Context, uow unitofwork.UnitOfWork, projectId uuid.UUID) error {
	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: projectId})
	if err != nil {
		return err
	}
	if project == nil {
		st.log.Warn("ideator", "parent project not found, skipping status update", map[string]interface{}{
			"project_id": projectId,
		})
		return nil
	}
	project.Status = constant.ProjectStatusScoping
	return uow.ProjectRepository().Update(ctx, project)
}

func (st *specificationStore) linkRoadmapNode(ctx context.Context, uow unitofwork.UnitOfWork, nodeId, ideaId uuid.UUID) error {
	node, err := uow.RoadmapNodeRepository().FindOne(ctx, specification.ByID{ID: nodeId})
	if err != nil {
		return err
	}
	if node == nil {
		st.log.Warn("ideator", "roadmap node not found, skipping linkage", map[string]interface{}{
			"node_id": nodeId,
		})
		return nil
	}
	node.Status = "in-progress"
	node.IdeaId = &ideaId
	return uow.RoadmapNodeRepository().Update(ctx, node)
}

func (st *specificationStore) publishFinalized(ctx context.Context, idea *entity.AgentIdea) {
	if st.publisherService == nil {
		return
	}
	data := map[string]interface{}{
		"idea_id": idea.Id,
		"user_id": idea.UserId,
		"title":   idea.Title,
	}
	if idea.ProjectId != nil {
		data["project_id"] = *idea.ProjectId
	}
	evt := events.BaseEvent{
		Type:       constant.EventSpecificationFinalized,
		Data:       data,
		OccurredAt: time.Now(),
	}
	// Notification is auxiliary, a publish failure never fails the save.
	if err := st.publisherService.PublishEvent(ctx, evt); err != nil {
		st.log.Warn("ideator", "failed to publish finalized event", map[string]interface{}{
			"idea_id": idea.Id.String(),
			"error":   err.Error(),
		})
	}
}

func extraSection(artifact *spec.Artifact, key string) json.RawMessage {
	if raw, ok := artifact.Extra[key]; ok {
		return raw
	}
	return json.RawMessage("{}")
}
