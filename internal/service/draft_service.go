package service

import (
	"context"
	"time"

	"advisor-portal-be/internal/constant"
	"advisor-portal-be/internal/dto"
	"advisor-portal-be/internal/entity"
	"advisor-portal-be/internal/repository/specification"
	"advisor-portal-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDraftService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateDraftRequest) (*dto.CreateDraftResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowDraftResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateDraftRequest) (*dto.UpdateDraftResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type draftService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDraftService(uowFactory unitofwork.RepositoryFactory) IDraftService {
	return &draftService{
		uowFactory: uowFactory,
	}
}

func (s *draftService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateDraftRequest) (*dto.CreateDraftResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	project := entity.Project{
		Id:          uuid.New(),
		ClientId:    userId,
		Name:        req.Name,
		Status:      constant.ProjectStatusDraft,
		ChatHistory: toChatTurns(req.ChatHistory),
		CreatedAt:   time.Now(),
	}

	if err := uow.ProjectRepository().Create(ctx, &project); err != nil {
		return nil, err
	}
	return &dto.CreateDraftResponse{Id: project.Id}, nil
}

func (s *draftService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowDraftResponse, error) {
	project, err := s.findDraft(ctx, userId, id)
	if err != nil {
		return nil, err
	}

	return &dto.ShowDraftResponse{
		Id:          project.Id,
		Name:        project.Name,
		Status:      project.Status,
		ChatHistory: toChatTurnDtos(project.ChatHistory),
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}, nil
}

func (s *draftService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateDraftRequest) (*dto.UpdateDraftResponse, error) {
	project, err := s.findDraft(ctx, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		project.Name = req.Name
	}
	if req.ChatHistory != nil {
		project.ChatHistory = toChatTurns(req.ChatHistory)
	}
	now := time.Now()
	project.UpdatedAt = &now

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProjectRepository().Update(ctx, project); err != nil {
		return nil, err
	}
	return &dto.UpdateDraftResponse{Id: project.Id}, nil
}

func (s *draftService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	if _, err := s.findDraft(ctx, userId, id); err != nil {
		return err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProjectRepository().Delete(ctx, id)
}

// findDraft loads a project the caller owns that is still in draft
// status. Anything else is a 404, drafts are invisible once promoted.
func (s *draftService) findDraft(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*entity.Project, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByClientID{ClientID: userId},
		specification.StatusIs{Status: constant.ProjectStatusDraft},
	)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Draft not found")
	}
	return project, nil
}

func toChatTurns(turns []dto.ChatTurnDto) []entity.ChatTurn {
	history := make([]entity.ChatTurn, len(turns))
	for i, t := range turns {
		history[i] = entity.ChatTurn{Role: t.Role, Content: t.Content}
	}
	return history
}

func toChatTurnDtos(turns []entity.ChatTurn) []dto.ChatTurnDto {
	history := make([]dto.ChatTurnDto, len(turns))
	for i, t := range turns {
		history[i] = dto.ChatTurnDto{Role: t.Role, Content: t.Content}
	}
	return history
}
