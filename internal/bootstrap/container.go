package bootstrap

import (
	"log"

	"advisor-portal-be/internal/config"
	"advisor-portal-be/internal/controller"
	"advisor-portal-be/internal/pkg/logger"
	"advisor-portal-be/internal/repository/memory"
	"advisor-portal-be/internal/repository/unitofwork"
	"advisor-portal-be/internal/service"
	"advisor-portal-be/pkg/ai/devpkg"
	"advisor-portal-be/pkg/ai/fallback"
	"advisor-portal-be/pkg/ai/ideator"
	"advisor-portal-be/pkg/ai/retry"
	"advisor-portal-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	IdeatorController controller.IIdeatorController
	IdeaController    controller.IIdeaController
	DraftController   controller.IDraftController

	// Background services
	ConsumerService service.IConsumerService

	// Infra
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Infrastructure
	appLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	// Model traffic goes to its own file so provider chatter never
	// drowns the application log.
	pipelineLogger := logger.NewPipelineFileLogger(cfg.App.PipelineLogFilePath)

	uowFactory := unitofwork.NewRepositoryFactory(db)
	sessionRepo := memory.NewSessionRepository()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM provider
	provider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.PrimaryModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Panicf("Unable to initialize LLM provider: %v", err)
	}

	pipelineCfg := ideator.Config{
		Provider:       provider,
		PrimaryModel:   cfg.Ai.PrimaryModel,
		FallbackModels: cfg.Ai.FallbackModels,
		MaxAttempts:    cfg.Ai.MaxAttempts,
		Backoffs:       cfg.Ai.Backoffs,
		MinExchanges:   cfg.Ai.MinExchanges,
		ChunkDelay:     cfg.Ai.ChunkDelay,
		Logger:         pipelineLogger,
	}

	retrier := retry.NewRetrier(cfg.Ai.MaxAttempts, cfg.Ai.Backoffs)
	ladder := fallback.NewLadder(provider, retrier, cfg.Ai.FallbackModels, pipelineLogger)
	generator := devpkg.NewGenerator(ladder, cfg.Ai.PrimaryModel, pipelineLogger)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.FinalizedTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.FinalizedTopic, uowFactory, appLogger)

	ideatorService := service.NewIdeatorService(pipelineCfg, uowFactory, publisherService, sessionRepo, appLogger)
	ideaService := service.NewIdeaService(uowFactory, generator, publisherService, appLogger)
	draftService := service.NewDraftService(uowFactory)

	publicOrchestrator := ideator.NewPublicOrchestrator(pipelineCfg)

	// 5. Controllers
	ideatorController := controller.NewIdeatorController(ideatorService, publicOrchestrator)
	ideaController := controller.NewIdeaController(ideaService)
	draftController := controller.NewDraftController(draftService)

	return &Container{
		IdeatorController: ideatorController,
		IdeaController:    ideaController,
		DraftController:   draftController,
		ConsumerService:   consumerService,
		Logger:            appLogger,
	}
}
