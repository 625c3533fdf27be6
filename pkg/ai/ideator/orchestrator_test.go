package ideator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advisor-portal-be/pkg/ai/spec"
	"advisor-portal-be/pkg/ai/stream"
	"advisor-portal-be/pkg/llm"
)

// fakeProvider answers the readiness check with a fixed verdict and
// every other call with the scripted response.
type fakeProvider struct {
	readyVerdict string
	response     string
	err          error
	chatCalls    int
}

func (f *fakeProvider) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	f.chatCalls++
	if f.err != nil {
		return "", f.err
	}
	if len(history) > 0 && strings.Contains(history[len(history)-1].Content, "Respond with only 'YES' or 'NO'") {
		return f.readyVerdict, nil
	}
	return f.response, nil
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

type memoryStore struct {
	saved  []*spec.Artifact
	owners []uuid.UUID
	err    error
}

func (m *memoryStore) Save(_ context.Context, artifact *spec.Artifact, ownerID uuid.UUID, _ ParentRefs) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.saved = append(m.saved, artifact)
	m.owners = append(m.owners, ownerID)
	return uuid.NewString(), nil
}

func drain(events <-chan stream.Event) []stream.Event {
	var out []stream.Event
	for e := range events {
		out = append(out, e)
	}
	return out
}

func newTestOrchestrator(provider llm.LLMProvider, store SpecificationStore) *Orchestrator {
	return New(Config{
		Provider:     provider,
		Store:        store,
		PrimaryModel: "model-a",
		MaxAttempts:  1,
		MinExchanges: 3,
	})
}

func gatheringHistory(turns int) []llm.Message {
	var h []llm.Message
	for i := 0; i < turns; i++ {
		h = append(h,
			llm.Message{Role: "user", Content: "requirement detail"},
			llm.Message{Role: "assistant", Content: "clarifying question"},
		)
	}
	return h
}

func TestFirstContactStreamsWelcome(t *testing.T) {
	provider := &fakeProvider{}
	o := newTestOrchestrator(provider, &memoryStore{})

	result, err := o.HandleTurn(context.Background(), TurnRequest{})
	require.NoError(t, err)
	require.NotNil(t, result.Stream)
	require.Nil(t, result.Final)

	events := drain(result.Stream)
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.True(t, last.Done)
	assert.Zero(t, provider.chatCalls, "welcome must not call the model")

	var text strings.Builder
	for _, e := range events[:len(events)-1] {
		text.WriteString(e.Content)
	}
	assert.Contains(t, text.String(), "ideate")
}

func TestGatheringTurnStreamsAssistantResponse(t *testing.T) {
	provider := &fakeProvider{readyVerdict: "NO", response: "What data sources will the agent use?"}
	o := newTestOrchestrator(provider, &memoryStore{})

	result, err := o.HandleTurn(context.Background(), TurnRequest{
		History: gatheringHistory(3),
		Message: "It should answer support tickets",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Stream)

	events := drain(result.Stream)
	require.NotEmpty(t, events)
	assert.True(t, events[len(events)-1].Done)

	var text strings.Builder
	for _, e := range events {
		text.WriteString(e.Content)
	}
	assert.Equal(t, "What data sources will the agent use? ", text.String())
}

func TestFinalizeCommandProducesSpecification(t *testing.T) {
	provider := &fakeProvider{
		response: "```json\n{\"title\":\"Support Agent\",\"summary\":\"Handles tickets\"}\n```",
	}
	store := &memoryStore{}
	o := newTestOrchestrator(provider, store)
	owner := uuid.New()

	result, err := o.HandleTurn(context.Background(), TurnRequest{
		OwnerID: owner,
		History: gatheringHistory(1),
		Message: "/done",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Final)
	assert.Nil(t, result.Stream)

	assert.Equal(t, "Support Agent", result.Final.Artifact.Title)
	assert.NotEmpty(t, result.Final.Response)
	assert.NotEmpty(t, result.Final.SpecificationID)
	require.Len(t, store.saved, 1)
	assert.Equal(t, owner, store.owners[0])
}

func TestFinalizeFlagBypassesGate(t *testing.T) {
	provider := &fakeProvider{
		readyVerdict: "NO",
		response:     `{"title":"Forced Agent"}`,
	}
	o := newTestOrchestrator(provider, &memoryStore{})

	result, err := o.HandleTurn(context.Background(), TurnRequest{
		History:  gatheringHistory(1),
		Message:  "just finish it",
		Finalize: true,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Final)
	assert.Equal(t, "Forced Agent", result.Final.Artifact.Title)
}

func TestFinalizeModelFailureYieldsFallbackArtifact(t *testing.T) {
	provider := &fakeProvider{err: errors.New("502 bad gateway")}
	o := newTestOrchestrator(provider, &memoryStore{})

	result, err := o.HandleTurn(context.Background(), TurnRequest{
		History: []llm.Message{{Role: "user", Content: "An agent for invoice processing"}},
		Message: "/done",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Final)
	assert.Equal(t, "An agent for invoice processing", result.Final.Artifact.Title)
	assert.NotEmpty(t, result.Final.Artifact.BuildPhases)
}

func TestFinalizeStoreFailureStillReturnsArtifact(t *testing.T) {
	provider := &fakeProvider{response: `{"title":"X"}`}
	storeErr := errors.New("connection refused")
	o := newTestOrchestrator(provider, &memoryStore{err: storeErr})

	result, err := o.HandleTurn(context.Background(), TurnRequest{
		History: gatheringHistory(1),
		Message: "/finalize",
	})
	require.ErrorIs(t, err, storeErr)
	require.NotNil(t, result.Final)
	assert.Equal(t, "X", result.Final.Artifact.Title)
	assert.Empty(t, result.Final.SpecificationID)
}

func TestGatheringFailureEmitsErrorEvent(t *testing.T) {
	provider := &fakeProvider{err: errors.New("401 unauthorized")}
	o := newTestOrchestrator(provider, &memoryStore{})

	result, err := o.HandleTurn(context.Background(), TurnRequest{
		History: gatheringHistory(1),
		Message: "tell me more",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Stream)

	events := drain(result.Stream)
	require.Len(t, events, 1)
	assert.NotEmpty(t, events[0].Error)
	assert.False(t, events[0].Done)
	// one gathering attempt plus the single degraded retry
	assert.Equal(t, 2, provider.chatCalls)
}

func TestTruncateRunesKeepsMultibyteCharactersWhole(t *testing.T) {
	long := strings.Repeat("ü", 100)
	got := truncateRunes(long, 80)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 80, utf8.RuneCountInString(got))

	assert.Equal(t, "short", truncateRunes("short", 80))
	assert.Equal(t, strings.Repeat("a", 80), truncateRunes(strings.Repeat("a", 200), 80))
}
