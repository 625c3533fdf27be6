package gate

import (
	"context"
	"regexp"
	"strings"

	"advisor-portal-be/internal/constant"
	"advisor-portal-be/internal/pkg/logger"
	"advisor-portal-be/pkg/llm"
)

// finalizeCommand matches explicit user commands like "/done" or
// "/finalize/" anywhere in the message, case-insensitive.
var finalizeCommand = regexp.MustCompile(`(?i)/(done|complete|finalize)/?`)

// IsFinalizeCommand reports whether the message contains an explicit
// finalize command. Command messages bypass the readiness classifier.
func IsFinalizeCommand(message string) bool {
	return finalizeCommand.MatchString(message)
}

// ModelCaller is the slice of the fallback ladder the gate needs.
type ModelCaller interface {
	Generate(ctx context.Context, history []llm.Message, primaryModel string, options ...llm.Option) (string, error)
}

// Gate decides whether a conversation has gathered enough detail to
// generate a specification. A cheap deterministic exchange count runs
// first; only conversations past the floor pay for a model call.
type Gate struct {
	caller       ModelCaller
	primaryModel string
	minExchanges int
	log          logger.ILogger
}

const DefaultMinExchanges = 3

func NewGate(caller ModelCaller, primaryModel string, minExchanges int, log logger.ILogger) *Gate {
	if minExchanges <= 0 {
		minExchanges = DefaultMinExchanges
	}
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Gate{
		caller:       caller,
		primaryModel: primaryModel,
		minExchanges: minExchanges,
		log:          log,
	}
}

// IsReady reports whether the specification should be generated now.
// An explicit finalize command in the latest message always opens the
// gate. Otherwise the conversation must clear the exchange floor before
// the YES/NO classifier is consulted; classifier failures keep the gate
// closed so the conversation continues instead of producing a thin spec.
func (g *Gate) IsReady(ctx context.Context, history []llm.Message, latestMessage string) bool {
	if IsFinalizeCommand(latestMessage) {
		return true
	}

	if g.userTurns(history, latestMessage) < g.minExchanges {
		return false
	}

	classifierHistory := append(append([]llm.Message{}, history...), llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: constant.ReadinessCheckPrompt,
	})

	response, err := g.caller.Generate(ctx, classifierHistory, g.primaryModel, llm.WithTemperature(0.3))
	if err != nil {
		g.log.Warn("gate", "readiness check failed, staying in gathering mode", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}

	return strings.ToUpper(strings.TrimSpace(response)) == "YES"
}

func (g *Gate) userTurns(history []llm.Message, latestMessage string) int {
	count := 0
	for _, m := range history {
		if m.Role == constant.ChatMessageRoleUser {
			count++
		}
	}
	if strings.TrimSpace(latestMessage) != "" {
		count++
	}
	return count
}
