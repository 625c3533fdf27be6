package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advisor-portal-be/internal/constant"
	"advisor-portal-be/internal/dto"
	"advisor-portal-be/pkg/events"
)

func TestPublishEventWrapsEnvelope(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { pubSub.Close() })

	ctx := context.Background()
	messages, err := pubSub.Subscribe(ctx, constant.EventSpecificationFinalized)
	require.NoError(t, err)

	publisher := NewPublisherService(constant.EventSpecificationFinalized, pubSub)
	ideaId := uuid.New()

	// Publish blocks until the subscriber takes the message.
	done := make(chan error, 1)
	go func() {
		done <- publisher.PublishEvent(ctx, events.BaseEvent{
			Type: constant.EventSpecificationFinalized,
			Data: map[string]interface{}{
				"idea_id": ideaId,
				"user_id": uuid.New(),
				"title":   "Invoice follow-up agent",
			},
			OccurredAt: time.Now(),
		})
	}()

	select {
	case msg := <-messages:
		var envelope dto.EventEnvelope
		require.NoError(t, json.Unmarshal(msg.Payload, &envelope))
		assert.Equal(t, constant.EventSpecificationFinalized, envelope.Type)
		assert.False(t, envelope.OccurredAt.IsZero())

		var payload dto.SpecificationFinalizedMessage
		require.NoError(t, json.Unmarshal(envelope.Data, &payload))
		assert.Equal(t, ideaId, payload.IdeaId)
		assert.Equal(t, "Invoice follow-up agent", payload.Title)
		msg.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("no message arrived on the bus")
	}

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("publish did not return")
	}
}
