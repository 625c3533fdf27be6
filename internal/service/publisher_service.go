package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"advisor-portal-be/internal/dto"
	"advisor-portal-be/pkg/events"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
	PublishEvent(ctx context.Context, evt events.Event) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (p *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return p.pubSub.Publish(p.topicName, msg)
}

// PublishEvent wraps a domain event in the shared envelope before
// putting it on the bus.
func (p *publisherService) PublishEvent(ctx context.Context, evt events.Event) error {
	data, err := json.Marshal(evt.Payload())
	if err != nil {
		return err
	}
	payload, err := json.Marshal(dto.EventEnvelope{
		Type:       evt.EventType(),
		Data:       data,
		OccurredAt: evt.Timestamp(),
	})
	if err != nil {
		return err
	}
	return p.Publish(ctx, payload)
}
