package ideator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advisor-portal-be/pkg/llm"
)

// streamingFake supports the incremental API.
type streamingFake struct {
	fakeProvider
	tokens []string
}

func (s *streamingFake) ChatStream(ctx context.Context, _ []llm.Message, _ ...llm.Option) (<-chan llm.Chunk, error) {
	out := make(chan llm.Chunk, len(s.tokens))
	for _, tok := range s.tokens {
		out <- llm.Chunk{Text: tok}
	}
	close(out)
	return out, nil
}

func drainPublic(events <-chan PublicEvent) []PublicEvent {
	var out []PublicEvent
	for e := range events {
		out = append(out, e)
	}
	return out
}

func newPublicOrchestrator(provider llm.LLMProvider) *PublicOrchestrator {
	return NewPublicOrchestrator(Config{
		Provider:     provider,
		PrimaryModel: "model-a",
		MaxAttempts:  1,
	})
}

func TestPublicFirstContactStreamsWelcome(t *testing.T) {
	p := newPublicOrchestrator(&fakeProvider{})

	events := drainPublic(p.HandleTurn(context.Background(), nil, ""))
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.True(t, last.Complete)
	assert.False(t, last.ShouldPromptSignup)
}

func TestPublicNativeStreaming(t *testing.T) {
	provider := &streamingFake{tokens: []string{"We can ", "automate ", "that."}}
	p := newPublicOrchestrator(provider)

	events := drainPublic(p.HandleTurn(context.Background(), nil, "I run a small logistics firm"))
	require.Len(t, events, 4)
	assert.Equal(t, "We can ", events[0].Chunk)
	assert.Equal(t, "automate ", events[1].Chunk)
	assert.Equal(t, "that.", events[2].Chunk)

	final := events[3]
	assert.True(t, final.Complete)
	assert.Equal(t, "We can automate that.", final.Response)
}

// failingStreamFake errors mid-stream after emitting its tokens.
type failingStreamFake struct {
	fakeProvider
	tokens []string
	errMsg string
}

func (s *failingStreamFake) ChatStream(ctx context.Context, _ []llm.Message, _ ...llm.Option) (<-chan llm.Chunk, error) {
	out := make(chan llm.Chunk, len(s.tokens)+1)
	for _, tok := range s.tokens {
		out <- llm.Chunk{Text: tok}
	}
	out <- llm.Chunk{Err: errors.New(s.errMsg)}
	close(out)
	return out, nil
}

func TestPublicNativeStreamErrorIsTerminal(t *testing.T) {
	provider := &failingStreamFake{tokens: []string{"partial "}, errMsg: "stream reset"}
	p := newPublicOrchestrator(provider)

	events := drainPublic(p.HandleTurn(context.Background(), nil, "hello"))
	require.Len(t, events, 2)
	assert.Equal(t, "partial ", events[0].Chunk)
	assert.Equal(t, "stream reset", events[1].Error)
	assert.False(t, events[1].Complete)
}

func TestPublicSimulatedFallbackWhenNotStreaming(t *testing.T) {
	provider := &fakeProvider{response: "two words"}
	p := newPublicOrchestrator(provider)

	events := drainPublic(p.HandleTurn(context.Background(), nil, "hello"))
	require.Len(t, events, 3)
	assert.Equal(t, "two ", events[0].Chunk)
	assert.Equal(t, "words ", events[1].Chunk)
	assert.True(t, events[2].Complete)
	assert.Equal(t, "two words", events[2].Response)
}

func TestShouldPromptSignup(t *testing.T) {
	userTurn := func(content string) llm.Message {
		return llm.Message{Role: "user", Content: content}
	}
	modelTurn := llm.Message{Role: "model", Content: "a suggestion"}

	tests := []struct {
		name     string
		history  []llm.Message
		response string
		want     bool
	}{
		{
			name:    "three user turns",
			history: []llm.Message{userTurn("a"), modelTurn, userTurn("b"), modelTurn, userTurn("c")},
			want:    true,
		},
		{
			name:    "two user turns no interest",
			history: []llm.Message{userTurn("a"), modelTurn, userTurn("b")},
			want:    false,
		},
		{
			name:    "interest in latest user message",
			history: []llm.Message{userTurn("a"), modelTurn, userTurn("Sounds great, let's do it!")},
			want:    true,
		},
		{
			name:     "interest in model response",
			history:  []llm.Message{userTurn("a")},
			response: "Perfect, here is how we would start.",
			want:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldPromptSignup(tt.history, tt.response))
		})
	}
}

func TestSanitizeHistoryDropsLeadingAssistantTurns(t *testing.T) {
	history := []llm.Message{
		{Role: "assistant", Content: "welcome message"},
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "how can I help?"},
	}

	out := sanitizeHistory(history)
	require.Len(t, out, 2)
	assert.Equal(t, "user", out[0].Role)
	assert.Equal(t, "model", out[1].Role, "assistant turns map to the model role")
}

func TestPublicWelcomeMentionsConsulting(t *testing.T) {
	p := newPublicOrchestrator(&fakeProvider{})

	events := drainPublic(p.HandleTurn(context.Background(), nil, ""))
	var text strings.Builder
	for _, e := range events {
		text.WriteString(e.Chunk)
	}
	assert.Contains(t, strings.ToLower(text.String()), "consultant")
}
