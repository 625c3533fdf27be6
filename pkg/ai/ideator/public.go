package ideator

import (
	"context"
	"strings"
	"time"

	"advisor-portal-be/internal/constant"
	"advisor-portal-be/internal/pkg/logger"
	"advisor-portal-be/pkg/ai/fallback"
	"advisor-portal-be/pkg/ai/retry"
	"advisor-portal-be/pkg/ai/stream"
	"advisor-portal-be/pkg/llm"
)

// PublicEvent is one SSE frame of the unauthenticated consultant chat.
// Chunk frames carry text; the Complete frame closes the stream with
// the full response and the signup decision.
type PublicEvent struct {
	Chunk              string `json:"chunk,omitempty"`
	Complete           bool   `json:"complete,omitempty"`
	ShouldPromptSignup bool   `json:"shouldPromptSignup,omitempty"`
	Response           string `json:"response,omitempty"`
	Error              string `json:"error,omitempty"`
}

// interestKeywords marks a user ready for the signup nudge before the
// exchange count gets there on its own.
var interestKeywords = []string{
	"love it",
	"perfect",
	"exactly",
	"let's do it",
	"how do we start",
	"what's next",
	"sounds great",
}

// PublicOrchestrator runs the pre-signup consultant conversation. It
// streams natively when the provider supports it and falls back to
// simulated chunking otherwise.
type PublicOrchestrator struct {
	provider   llm.LLMProvider
	ladder     *fallback.Ladder
	primary    string
	chunkDelay time.Duration
	log        logger.ILogger
}

func NewPublicOrchestrator(cfg Config) *PublicOrchestrator {
	log := cfg.Logger
	if log == nil {
		log = logger.NewNopLogger()
	}
	if cfg.ChunkDelay <= 0 {
		cfg.ChunkDelay = stream.DefaultChunkDelay
	}
	retrier := retry.NewRetrier(cfg.MaxAttempts, cfg.Backoffs)
	return &PublicOrchestrator{
		provider:   cfg.Provider,
		ladder:     fallback.NewLadder(cfg.Provider, retrier, cfg.FallbackModels, log),
		primary:    cfg.PrimaryModel,
		chunkDelay: cfg.ChunkDelay,
		log:        log,
	}
}

// HandleTurn produces the event stream for one public conversation
// turn. The goroutine stops emitting as soon as ctx is cancelled.
func (p *PublicOrchestrator) HandleTurn(ctx context.Context, history []llm.Message, message string) <-chan PublicEvent {
	out := make(chan PublicEvent)
	go func() {
		defer close(out)

		if strings.TrimSpace(message) == "" && len(history) == 0 {
			p.emitSimulated(ctx, out, constant.PublicIdeatorWelcomeMessage, nil)
			return
		}

		sanitized := sanitizeHistory(history)
		contents := append(sanitized, llm.Message{Role: constant.ChatMessageRoleUser, Content: message})
		opts := []llm.Option{
			llm.WithSystemInstruction(constant.PublicIdeatorSystemPrompt),
			llm.WithModel(p.primary),
		}

		if streamer, ok := p.provider.(llm.StreamingProvider); ok {
			chunks, err := streamer.ChatStream(ctx, contents, opts...)
			if err == nil {
				p.emitNative(ctx, out, stream.Forward(ctx, chunks), contents)
				return
			}
			p.log.Warn("public_ideator", "native stream unavailable, using simulated chunking", map[string]interface{}{
				"error": err.Error(),
			})
		}

		text, err := p.ladder.Generate(ctx, contents, p.primary,
			llm.WithSystemInstruction(constant.PublicIdeatorSystemPrompt))
		if err != nil {
			p.log.Error("public_ideator", "turn failed", map[string]interface{}{
				"error": err.Error(),
			})
			emit(ctx, out, PublicEvent{Error: "The assistant is temporarily unavailable. Please try again."})
			return
		}
		p.emitSimulated(ctx, out, text, contents)
	}()
	return out
}

// emitNative maps the shared stream contract onto the public frame
// while accumulating the full response for the complete frame.
func (p *PublicOrchestrator) emitNative(ctx context.Context, out chan<- PublicEvent, events <-chan stream.Event, contents []llm.Message) {
	var full strings.Builder
	for event := range events {
		switch {
		case event.Error != "":
			emit(ctx, out, PublicEvent{Error: event.Error})
			return
		case event.Done:
			emit(ctx, out, PublicEvent{
				Complete:           true,
				ShouldPromptSignup: ShouldPromptSignup(contents, full.String()),
				Response:           full.String(),
			})
			return
		default:
			full.WriteString(event.Content)
			if !emit(ctx, out, PublicEvent{Chunk: event.Content}) {
				return
			}
		}
	}
}

func (p *PublicOrchestrator) emitSimulated(ctx context.Context, out chan<- PublicEvent, text string, contents []llm.Message) {
	for _, word := range strings.Fields(text) {
		if !emit(ctx, out, PublicEvent{Chunk: word + " "}) {
			return
		}
		if p.chunkDelay > 0 {
			select {
			case <-time.After(p.chunkDelay):
			case <-ctx.Done():
				return
			}
		}
	}
	emit(ctx, out, PublicEvent{
		Complete:           true,
		ShouldPromptSignup: ShouldPromptSignup(contents, text),
		Response:           text,
	})
}

func emit(ctx context.Context, out chan<- PublicEvent, event PublicEvent) bool {
	select {
	case out <- event:
		return true
	case <-ctx.Done():
		return false
	}
}

// ShouldPromptSignup decides when the conversation has earned the
// signup nudge: three user turns, or explicit interest in either the
// latest user message or the model's response.
func ShouldPromptSignup(history []llm.Message, latestResponse string) bool {
	userTurns := 0
	lastContent := ""
	for _, m := range history {
		if m.Role == constant.ChatMessageRoleUser {
			userTurns++
		}
		lastContent = m.Content
	}
	if userTurns >= 3 {
		return true
	}

	lowerResponse := strings.ToLower(latestResponse)
	lowerLast := strings.ToLower(lastContent)
	for _, keyword := range interestKeywords {
		if strings.Contains(lowerResponse, keyword) || strings.Contains(lowerLast, keyword) {
			return true
		}
	}
	return false
}

// sanitizeHistory maps assistant turns to the model role and drops
// leading non-user messages such as the stored welcome turn, which
// upstream chat APIs reject as the opening message.
func sanitizeHistory(history []llm.Message) []llm.Message {
	var out []llm.Message
	seenUser := false
	for _, m := range history {
		role := m.Role
		if role == constant.ChatMessageRoleAssistant {
			role = constant.ChatMessageRoleModel
		}
		if !seenUser && role != constant.ChatMessageRoleUser {
			continue
		}
		if role == constant.ChatMessageRoleUser {
			seenUser = true
		}
		out = append(out, llm.Message{Role: role, Content: m.Content})
	}
	return out
}
