package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"advisor-portal-be/internal/constant"
	"advisor-portal-be/internal/dto"
	"advisor-portal-be/internal/entity"
	"advisor-portal-be/internal/pkg/logger"
	"advisor-portal-be/internal/repository/specification"
	"advisor-portal-be/internal/repository/unitofwork"
	"advisor-portal-be/pkg/ai/devpkg"
	"advisor-portal-be/pkg/ai/ideator"
	"advisor-portal-be/pkg/ai/spec"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const titlePrefixLength = 24

type IIdeaService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateIdeaRequest) (*dto.CreateIdeaResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ListIdeasResponse, error)
	Show(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) (*dto.ShowIdeaResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateIdeaRequest) (*dto.UpdateIdeaResponse, error)
	DevPackage(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) (*dto.DevPackageResponse, error)
	DownloadDevPackage(ctx context.Context, userId uuid.UUID, fileId uuid.UUID) (*entity.ProjectFile, error)
	DeleteDevPackage(ctx context.Context, userId uuid.UUID, fileId uuid.UUID) error
}

const defaultUploadsDir = "uploads"

type ideaService struct {
	uowFactory       unitofwork.RepositoryFactory
	generator        *devpkg.Generator
	publisherService IPublisherService
	log              logger.ILogger
	uploadsDir       string
}

func NewIdeaService(
	uowFactory unitofwork.RepositoryFactory,
	generator *devpkg.Generator,
	publisherService IPublisherService,
	log logger.ILogger,
) IIdeaService {
	return &ideaService{
		uowFactory:       uowFactory,
		generator:        generator,
		publisherService: publisherService,
		log:              log,
		uploadsDir:       defaultUploadsDir,
	}
}

// Create persists a caller-supplied artifact directly, outside the
// ideator flow, with the same linkage rules as a finalized conversation.
func (s *ideaService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateIdeaRequest) (*dto.CreateIdeaResponse, error) {
	var artifact spec.Artifact
	if err := json.Unmarshal(req.Specification, &artifact); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid specification payload")
	}

	store := &specificationStore{
		uowFactory:       s.uowFactory,
		publisherService: s.publisherService,
		log:              s.log,
		history:          toChatTurns(req.ConversationHistory),
	}

	idStr, err := store.Save(ctx, &artifact, userId, ideator.ParentRefs{
		ProjectID: req.ProjectId,
		NodeID:    req.NodeId,
	})
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	return &dto.CreateIdeaResponse{Id: id}, nil
}

func (s *ideaService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ListIdeasResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	ideas, err := uow.AgentIdeaRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ListIdeasResponse, len(ideas))
	for i, idea := range ideas {
		res[i] = &dto.ListIdeasResponse{
			Id:        idea.Id,
			Title:     idea.Title,
			AgentType: idea.AgentType,
			Summary:   idea.Summary,
			Status:    idea.Status,
			ProjectId: idea.ProjectId,
			CreatedAt: idea.CreatedAt,
		}
	}
	return res, nil
}

func (s *ideaService) Show(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) (*dto.ShowIdeaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	idea, err := uow.AgentIdeaRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Idea not found")
	}

	// Clients sometimes open prebuilt ideas whose structured sections
	// were never filled. Try to borrow them from a matching unassigned
	// idea before rendering.
	if role == "client" && isThin(idea) {
		s.enrich(ctx, uow, idea)
	}

	return &dto.ShowIdeaResponse{
		Id:                     idea.Id,
		Title:                  idea.Title,
		AgentType:              idea.AgentType,
		Summary:                idea.Summary,
		Status:                 idea.Status,
		ProjectId:              idea.ProjectId,
		Steps:                  idea.Steps,
		BuildPhases:            marshalPhases(idea.BuildPhases),
		AgentStack:             idea.AgentStack,
		SecurityConsiderations: idea.SecurityConsiderations,
		ClientRequirements:     idea.ClientRequirements,
		ImplementationEstimate: idea.ImplementationEstimate,
		FutureEnhancements:     idea.FutureEnhancements,
		SummaryMessage:         idea.SummaryMessage,
		CreatedAt:              idea.CreatedAt,
		UpdatedAt:              idea.UpdatedAt,
	}, nil
}

// isThin reports whether the structured sections are all missing.
func isThin(idea *entity.AgentIdea) bool {
	return len(idea.Steps) == 0 && len(idea.BuildPhases) == 0 &&
		len(idea.SecurityConsiderations) == 0 && len(idea.ClientRequirements) == 0
}

// enrich fills the empty sections of a thin idea from the best-matching
// unassigned idea: exact title first, then a case-insensitive prefix
// match. It never overwrites a section that already has content.
func (s *ideaService) enrich(ctx context.Context, uow unitofwork.UnitOfWork, idea *entity.AgentIdea) {
	donor := s.findDonor(ctx, uow, idea.Title)
	if donor == nil || donor.Id == idea.Id {
		return
	}

	fillFromDonor(idea, donor)

	s.log.Info("idea", "enriched thin idea from unassigned match", map[string]interface{}{
		"idea_id":  idea.Id.String(),
		"donor_id": donor.Id.String(),
	})
}

func fillFromDonor(idea, donor *entity.AgentIdea) {
	if len(idea.Steps) == 0 {
		idea.Steps = donor.Steps
	}
	if len(idea.BuildPhases) == 0 {
		idea.BuildPhases = donor.BuildPhases
	}
	if len(idea.SecurityConsiderations) == 0 {
		idea.SecurityConsiderations = donor.SecurityConsiderations
	}
	if len(idea.ClientRequirements) == 0 {
		idea.ClientRequirements = donor.ClientRequirements
	}
	if isEmptyJSON(idea.AgentStack) {
		idea.AgentStack = donor.AgentStack
	}
	if isEmptyJSON(idea.ImplementationEstimate) {
		idea.ImplementationEstimate = donor.ImplementationEstimate
	}
}

func (s *ideaService) findDonor(ctx context.Context, uow unitofwork.UnitOfWork, title string) *entity.AgentIdea {
	statuses := specification.StatusIn{Statuses: []string{constant.IdeaStatusPending, constant.IdeaStatusApproved}}

	donor, err := uow.AgentIdeaRepository().FindOne(ctx,
		specification.TitleIs{Title: title},
		specification.ProjectUnassigned{},
		statuses,
	)
	if err != nil || donor != nil {
		return donor
	}

	donor, err = uow.AgentIdeaRepository().FindOne(ctx,
		specification.TitleLike{Fragment: titlePrefix(title)},
		specification.ProjectUnassigned{},
		statuses,
	)
	if err != nil {
		return nil
	}
	return donor
}

// titlePrefix keeps the leading runes used for fuzzy title matching,
// never cutting inside a multibyte character.
func titlePrefix(title string) string {
	runes := []rune(title)
	if len(runes) <= titlePrefixLength {
		return title
	}
	return string(runes[:titlePrefixLength])
}

func isEmptyJSON(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "{}", "null", "[]":
		return true
	}
	return false
}

func marshalPhases(phases []spec.BuildPhase) json.RawMessage {
	if len(phases) == 0 {
		return json.RawMessage("[]")
	}
	encoded, err := json.Marshal(phases)
	if err != nil {
		return json.RawMessage("[]")
	}
	return encoded
}

func (s *ideaService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateIdeaRequest) (*dto.UpdateIdeaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	idea, err := uow.AgentIdeaRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Idea not found")
	}

	idea.Title = req.Title
	if req.Summary != "" {
		idea.Summary = req.Summary
	}
	if req.Status != "" {
		idea.Status = req.Status
	}
	now := time.Now()
	idea.UpdatedAt = &now

	if err := uow.AgentIdeaRepository().Update(ctx, idea); err != nil {
		return nil, err
	}
	return &dto.UpdateIdeaResponse{Id: idea.Id}, nil
}

func (s *ideaService) DevPackage(ctx context.Context, userId uuid.UUID, projectId uuid.UUID) (*dto.DevPackageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	idea, err := uow.AgentIdeaRepository().FindOne(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "No specification found for project")
	}

	artifact := artifactFromIdea(idea)
	files := s.generator.Generate(ctx, artifact)

	archive, err := devpkg.Archive(files)
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("dev-package-%s.zip", projectId)
	storedPath, err := writePackage(s.uploadsDir, projectId, fileName, archive)
	if err != nil {
		return nil, err
	}

	file := &entity.ProjectFile{
		Id:           uuid.New(),
		ProjectId:    projectId,
		UserId:       userId,
		Filename:     storedPath,
		OriginalName: fileName,
		MimeType:     "application/zip",
		Size:         int64(len(archive)),
		AdvisorOnly:  true,
		Content:      archive,
		CreatedAt:    time.Now(),
	}
	if err := uow.ProjectFileRepository().Create(ctx, file); err != nil {
		return nil, err
	}

	return &dto.DevPackageResponse{
		FileId:   file.Id,
		FileName: file.OriginalName,
		Size:     len(archive),
		Url:      "/" + filepath.ToSlash(storedPath),
	}, nil
}

// writePackage stores the archive under {baseDir}/{projectId} and
// returns the relative path that the static file route serves.
func writePackage(baseDir string, projectId uuid.UUID, fileName string, data []byte) (string, error) {
	dir := filepath.Join(baseDir, projectId.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (s *ideaService) DownloadDevPackage(ctx context.Context, userId uuid.UUID, fileId uuid.UUID) (*entity.ProjectFile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	file, err := uow.ProjectFileRepository().FindOne(ctx,
		specification.ByID{ID: fileId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if file == nil || !file.AdvisorOnly {
		return nil, fiber.NewError(fiber.StatusNotFound, "Package not found")
	}
	return file, nil
}

func (s *ideaService) DeleteDevPackage(ctx context.Context, userId uuid.UUID, fileId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	file, err := uow.ProjectFileRepository().FindOne(ctx,
		specification.ByID{ID: fileId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if file == nil || !file.AdvisorOnly {
		return fiber.NewError(fiber.StatusNotFound, "Package not found")
	}
	if err := uow.ProjectFileRepository().Delete(ctx, fileId); err != nil {
		return err
	}
	// The database row is authoritative, a stale file on disk is not
	// worth failing the request over.
	if err := os.Remove(file.Filename); err != nil && !os.IsNotExist(err) {
		s.log.Warn("idea", "failed to remove package file", map[string]interface{}{
			"file_id": fileId.String(),
			"path":    file.Filename,
			"error":   err.Error(),
		})
	}
	return nil
}

// artifactFromIdea rebuilds the pipeline artifact shape from a stored idea.
func artifactFromIdea(idea *entity.AgentIdea) *spec.Artifact {
	extra := map[string]json.RawMessage{}
	if !isEmptyJSON(idea.AgentStack) {
		extra["agent_stack"] = idea.AgentStack
	}
	if !isEmptyJSON(idea.ImplementationEstimate) {
		extra["implementation_estimate"] = idea.ImplementationEstimate
	}
	if !isEmptyJSON(idea.FutureEnhancements) {
		extra["future_enhancements"] = idea.FutureEnhancements
	}

	return &spec.Artifact{
		Title:                  idea.Title,
		AgentType:              idea.AgentType,
		Summary:                idea.Summary,
		Steps:                  idea.Steps,
		BuildPhases:            idea.BuildPhases,
		SecurityConsiderations: idea.SecurityConsiderations,
		ClientRequirements:     idea.ClientRequirements,
		SummaryMessage:         idea.SummaryMessage,
		Extra:                  extra,
	}
}
