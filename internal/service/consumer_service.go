package service

import (
	"context"
	"encoding/json"

	"advisor-portal-be/internal/constant"
	"advisor-portal-be/internal/dto"
	"advisor-portal-be/internal/pkg/logger"
	"advisor-portal-be/internal/repository/specification"
	"advisor-portal-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var envelope dto.EventEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		cs.log.Error("consumer", "failed to unmarshal envelope", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}
	if envelope.Type != constant.EventSpecificationFinalized {
		cs.log.Warn("consumer", "unhandled event type", map[string]interface{}{
			"type": envelope.Type,
		})
		msg.Ack()
		return
	}

	var payload dto.SpecificationFinalizedMessage
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal event data", map[string]interface{}{
			"type":  envelope.Type,
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	idea, err := uow.AgentIdeaRepository().FindOne(ctx, specification.ByID{ID: payload.IdeaId})
	if err != nil {
		cs.log.Error("consumer", "failed to load finalized idea", map[string]interface{}{
			"idea_id": payload.IdeaId.String(),
			"error":   err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}
	if idea == nil {
		cs.log.Warn("consumer", "finalized idea not found", map[string]interface{}{
			"idea_id": payload.IdeaId.String(),
		})
		msg.Ack()
		return
	}

	details := map[string]interface{}{
		"idea_id": idea.Id.String(),
		"user_id": idea.UserId.String(),
		"title":   idea.Title,
		"status":  idea.Status,
	}
	if idea.ProjectId != nil {
		details["project_id"] = idea.ProjectId.String()
	}
	cs.log.Info("consumer", "specification finalized", details)
	msg.Ack()
}
