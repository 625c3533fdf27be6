package ideator

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"advisor-portal-be/internal/constant"
	"advisor-portal-be/internal/pkg/logger"
	"advisor-portal-be/pkg/ai/fallback"
	"advisor-portal-be/pkg/ai/gate"
	"advisor-portal-be/pkg/ai/retry"
	"advisor-portal-be/pkg/ai/spec"
	"advisor-portal-be/pkg/ai/stream"
	"advisor-portal-be/pkg/llm"
)

// ParentRefs optionally links a persisted specification to an existing
// project or roadmap node.
type ParentRefs struct {
	ProjectID *uuid.UUID
	NodeID    *uuid.UUID
}

// SpecificationStore persists finalized artifacts. The orchestrator
// only needs acceptance; durability concerns live behind it.
type SpecificationStore interface {
	Save(ctx context.Context, artifact *spec.Artifact, ownerID uuid.UUID, refs ParentRefs) (string, error)
}

// Config wires the orchestrator. Zero values fall back to defaults so
// callers only set what they care about.
type Config struct {
	Provider       llm.LLMProvider
	Store          SpecificationStore
	PrimaryModel   string
	FallbackModels []string
	MaxAttempts    int
	Backoffs       []time.Duration
	MinExchanges   int
	ChunkDelay     time.Duration
	Logger         logger.ILogger
}

// TurnRequest is one conversation turn. History carries the full prior
// conversation; the orchestrator keeps no session state of its own.
type TurnRequest struct {
	OwnerID  uuid.UUID
	History  []llm.Message
	Message  string
	Finalize bool
	Refs     ParentRefs
}

// TurnResult is either a stream (welcome, gathering, errors) or a
// finalize payload, never both.
type TurnResult struct {
	Stream <-chan stream.Event
	Final  *FinalizeResult
}

// FinalizeResult is the terminal payload of a conversation.
type FinalizeResult struct {
	Response        string
	Artifact        *spec.Artifact
	SpecificationID string
}

// Orchestrator drives one ideation conversation turn at a time:
// welcome on the first contact, question rounds while gathering, and a
// persisted specification once the readiness gate opens.
type Orchestrator struct {
	ladder     *fallback.Ladder
	gate       *gate.Gate
	store      SpecificationStore
	primary    string
	chunkDelay time.Duration
	log        logger.ILogger
}

func New(cfg Config) *Orchestrator {
	log := cfg.Logger
	if log == nil {
		log = logger.NewNopLogger()
	}
	if cfg.ChunkDelay <= 0 {
		cfg.ChunkDelay = stream.DefaultChunkDelay
	}

	retrier := retry.NewRetrier(cfg.MaxAttempts, cfg.Backoffs)
	ladder := fallback.NewLadder(cfg.Provider, retrier, cfg.FallbackModels, log)

	return &Orchestrator{
		ladder:     ladder,
		gate:       gate.NewGate(ladder, cfg.PrimaryModel, cfg.MinExchanges, log),
		store:      cfg.Store,
		primary:    cfg.PrimaryModel,
		chunkDelay: cfg.ChunkDelay,
		log:        log,
	}
}

// HandleTurn processes one turn. The returned error is non-nil only
// when a finalized artifact could not be persisted; the artifact itself
// is still returned so the caller can retry the save.
func (o *Orchestrator) HandleTurn(ctx context.Context, req TurnRequest) (*TurnResult, error) {
	if strings.TrimSpace(req.Message) == "" && len(req.History) == 0 {
		return &TurnResult{Stream: stream.Simulate(ctx, constant.IdeatorWelcomeMessage, o.chunkDelay)}, nil
	}

	if req.Finalize || o.gate.IsReady(ctx, req.History, req.Message) {
		return o.finalize(ctx, req)
	}

	return o.gather(ctx, req), nil
}

func (o *Orchestrator) gather(ctx context.Context, req TurnRequest) *TurnResult {
	contents := appendTurn(req.History, req.Message)
	opts := []llm.Option{llm.WithSystemInstruction(constant.IdeatorSystemPrompt)}

	text, err := o.ladder.Generate(ctx, contents, o.primary, opts...)
	if err != nil {
		o.log.Warn("ideator", "gathering turn failed, retrying once", map[string]interface{}{
			"error": err.Error(),
		})
		text, err = o.ladder.Generate(ctx, contents, o.primary, opts...)
	}
	if err != nil {
		o.log.Error("ideator", "gathering turn failed", map[string]interface{}{
			"error": err.Error(),
		})
		return &TurnResult{Stream: stream.ErrorStream("The assistant is temporarily unavailable. Please try again.")}
	}

	return &TurnResult{Stream: stream.Simulate(ctx, text, o.chunkDelay)}
}

func (o *Orchestrator) finalize(ctx context.Context, req TurnRequest) (*TurnResult, error) {
	forced := req.Finalize || gate.IsFinalizeCommand(req.Message)

	prompt := constant.SpecificationPromptHeader
	if forced {
		prompt += constant.DoneCommandAssumptions
	}
	prompt += constant.SpecificationPromptBody

	contents := appendTurn(req.History, req.Message)
	contents = append(contents, llm.Message{Role: constant.ChatMessageRoleUser, Content: prompt})

	raw, err := o.ladder.Generate(ctx, contents, o.primary,
		llm.WithSystemInstruction(constant.IdeatorSystemPrompt),
		llm.WithMaxTokens(4096),
	)
	if err != nil {
		o.log.Error("ideator", "specification generation failed, using fallback artifact", map[string]interface{}{
			"error": err.Error(),
		})
		raw = ""
	}

	artifact := spec.ParseArtifact(raw, o.fallbackInputs(req))

	result := &TurnResult{Final: &FinalizeResult{
		Response: artifact.SummaryMessage,
		Artifact: artifact,
	}}

	if o.store == nil {
		return result, nil
	}

	id, saveErr := o.store.Save(ctx, artifact, req.OwnerID, req.Refs)
	if saveErr != nil {
		o.log.Error("ideator", "failed to persist specification", map[string]interface{}{
			"error": saveErr.Error(),
			"owner": req.OwnerID.String(),
		})
		return result, saveErr
	}
	result.Final.SpecificationID = id
	return result, nil
}

// fallbackInputs seeds the deterministic fallback from the first user
// turn, which usually names the agent.
func (o *Orchestrator) fallbackInputs(req TurnRequest) spec.FallbackInputs {
	title := ""
	for _, m := range req.History {
		if m.Role == constant.ChatMessageRoleUser && strings.TrimSpace(m.Content) != "" {
			title = strings.TrimSpace(m.Content)
			break
		}
	}
	if title == "" {
		title = strings.TrimSpace(req.Message)
	}
	title = strings.TrimSpace(truncateRunes(title, 80))
	return spec.FallbackInputs{Title: title}
}

// truncateRunes shortens s to at most max runes without splitting a
// multibyte character.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func appendTurn(history []llm.Message, message string) []llm.Message {
	contents := append([]llm.Message{}, history...)
	if strings.TrimSpace(message) != "" {
		contents = append(contents, llm.Message{Role: constant.ChatMessageRoleUser, Content: message})
	}
	return contents
}
