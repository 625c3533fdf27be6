package controller

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advisor-portal-be/internal/dto"
	"advisor-portal-be/internal/service"
	"advisor-portal-be/pkg/ai/ideator"
	"advisor-portal-be/pkg/ai/spec"
	"advisor-portal-be/pkg/ai/stream"
)

type stubIdeatorService struct {
	result *ideator.TurnResult
	err    error
}

func (s *stubIdeatorService) Chat(_ context.Context, _ uuid.UUID, _ *dto.IdeatorChatRequest) (*ideator.TurnResult, error) {
	return s.result, s.err
}

func newChatApp(svc service.IIdeatorService) *fiber.App {
	ctrl := NewIdeatorController(svc, nil)
	app := fiber.New()
	app.Post("/chat", ctrl.Chat)
	return app
}

func TestChatFinalizeSuccess(t *testing.T) {
	svc := &stubIdeatorService{
		result: &ideator.TurnResult{Final: &ideator.FinalizeResult{
			Response:        "All set.",
			Artifact:        &spec.Artifact{Title: "Invoice follow-up agent"},
			SpecificationID: "4f9d2c1e",
		}},
	}
	app := newChatApp(svc)

	req := httptest.NewRequest(fiber.MethodPost, "/chat", strings.NewReader(`{"message":"/done"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.IdeatorFinalizeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Complete)
	assert.Empty(t, out.Error)
	assert.Equal(t, "4f9d2c1e", out.SpecificationId)
	assert.Equal(t, "Invoice follow-up agent", out.Specification["title"])
}

func TestChatSaveFailureKeepsArtifactAndSignalsError(t *testing.T) {
	svc := &stubIdeatorService{
		result: &ideator.TurnResult{Final: &ideator.FinalizeResult{
			Response: "All set.",
			Artifact: &spec.Artifact{Title: "Invoice follow-up agent"},
		}},
		err: errors.New("db connection refused"),
	}
	app := newChatApp(svc)

	req := httptest.NewRequest(fiber.MethodPost, "/chat", strings.NewReader(`{"message":"/done"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var out dto.IdeatorFinalizeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.Error)
	assert.Empty(t, out.SpecificationId)
	assert.Equal(t, "Invoice follow-up agent", out.Specification["title"],
		"the artifact must survive a failed save")
}

func TestChatFinalizedSessionConflict(t *testing.T) {
	app := newChatApp(&stubIdeatorService{err: service.ErrSessionFinalized})

	req := httptest.NewRequest(fiber.MethodPost, "/chat", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

// brokenWriter accepts a fixed number of writes, then fails as a
// hung-up client connection would.
type brokenWriter struct {
	writes    int
	failAfter int
}

func (w *brokenWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > w.failAfter {
		return 0, errors.New("connection closed")
	}
	return len(p), nil
}

func TestPumpSSEStopsProductionOnWriteFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := stream.Simulate(ctx, strings.Repeat("word ", 40), time.Millisecond)

	sink := &brokenWriter{failAfter: 2}
	pumpSSE(bufio.NewWriter(sink), events, cancel)

	assert.Error(t, ctx.Err(), "a dead client must cancel the producing context")
	_, open := <-events
	assert.False(t, open, "the producer must stop and close its channel")
	assert.Less(t, sink.writes, 40, "no further frames after the failed write")
}

func TestPumpSSEDrainsCompletedStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := stream.Simulate(ctx, "two words", time.Millisecond)

	sink := &brokenWriter{failAfter: 100}
	pumpSSE(bufio.NewWriter(sink), events, cancel)

	// Two content frames plus the done frame.
	assert.Equal(t, 3, sink.writes)
	assert.Error(t, ctx.Err(), "pump releases the context when the stream ends")
}
