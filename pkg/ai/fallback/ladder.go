package fallback

import (
	"context"

	"advisor-portal-be/internal/pkg/logger"
	"advisor-portal-be/pkg/ai/retry"
	"advisor-portal-be/pkg/llm"
)

// Ladder walks an ordered list of models for a single logical request.
// Each candidate gets a full retry cycle; the ladder advances only when a
// candidate is exhausted by transient failures. Fatal errors stop the walk
// immediately because they would fail identically on every model.
type Ladder struct {
	provider  llm.LLMProvider
	retrier   *retry.Retrier
	fallbacks []string
	log       logger.ILogger
}

func NewLadder(provider llm.LLMProvider, retrier *retry.Retrier, fallbacks []string, log logger.ILogger) *Ladder {
	if retrier == nil {
		retrier = retry.NewRetrier(0, nil)
	}
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Ladder{
		provider:  provider,
		retrier:   retrier,
		fallbacks: fallbacks,
		log:       log,
	}
}

// Generate runs the chat completion against the primary model, then each
// configured fallback in order. Duplicates are collapsed so a fallback that
// matches the primary is not attempted twice.
func (l *Ladder) Generate(ctx context.Context, history []llm.Message, primaryModel string, options ...llm.Option) (string, error) {
	candidates := l.candidates(primaryModel)

	var lastErr error
	for i, model := range candidates {
		opts := append([]llm.Option{}, options...)
		if model != "" {
			opts = append(opts, llm.WithModel(model))
		}

		result, err := l.retrier.Do(ctx, func() (string, error) {
			return l.provider.Chat(ctx, history, opts...)
		})
		if err == nil {
			if i > 0 {
				l.log.Info("fallback", "model ladder recovered", map[string]interface{}{
					"model":   model,
					"skipped": candidates[:i],
				})
			}
			return result, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if !retry.IsTransient(err) {
			l.log.Error("fallback", "fatal model error, aborting ladder", map[string]interface{}{
				"model": model,
				"error": err.Error(),
			})
			return "", err
		}

		l.log.Warn("fallback", "model exhausted, advancing ladder", map[string]interface{}{
			"model": model,
			"error": err.Error(),
		})
	}

	l.log.Error("fallback", "all models exhausted", map[string]interface{}{
		"candidates": candidates,
	})
	return "", lastErr
}

// candidates builds the ordered walk: primary first, then fallbacks,
// with duplicates removed while preserving order.
func (l *Ladder) candidates(primary string) []string {
	out := make([]string, 0, 1+len(l.fallbacks))
	seen := make(map[string]bool)

	appendModel := func(m string) {
		if seen[m] {
			return
		}
		seen[m] = true
		out = append(out, m)
	}

	appendModel(primary)
	for _, m := range l.fallbacks {
		appendModel(m)
	}
	return out
}
