package fallback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advisor-portal-be/pkg/ai/retry"
	"advisor-portal-be/pkg/llm"
)

// scriptedProvider returns one scripted outcome per call, recording the
// model each call was routed to.
type scriptedProvider struct {
	responses []scriptedResponse
	models    []string
	calls     int
}

type scriptedResponse struct {
	text string
	err  error
}

func (p *scriptedProvider) Chat(_ context.Context, _ []llm.Message, options ...llm.Option) (string, error) {
	opts := llm.ResolveOptions(options...)
	p.models = append(p.models, opts.Model)

	if p.calls >= len(p.responses) {
		return "", errors.New("unscripted call")
	}
	resp := p.responses[p.calls]
	p.calls++
	return resp.text, resp.err
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func singleAttemptRetrier() *retry.Retrier {
	return retry.NewRetrier(1, nil)
}

func TestLadderAdvancesOnTransientExhaustion(t *testing.T) {
	provider := &scriptedProvider{
		responses: []scriptedResponse{
			{err: errors.New("model overloaded")},
			{text: "response from b"},
		},
	}
	ladder := NewLadder(provider, singleAttemptRetrier(), []string{"model-b", "model-c"}, nil)

	result, err := ladder.Generate(context.Background(), nil, "model-a")
	require.NoError(t, err)
	assert.Equal(t, "response from b", result)
	assert.Equal(t, []string{"model-a", "model-b"}, provider.models, "model-c must never be attempted once model-b succeeds")
}

func TestLadderFatalErrorAbortsImmediately(t *testing.T) {
	fatal := errors.New("400 malformed request")
	provider := &scriptedProvider{
		responses: []scriptedResponse{{err: fatal}},
	}
	ladder := NewLadder(provider, singleAttemptRetrier(), []string{"model-b"}, nil)

	_, err := ladder.Generate(context.Background(), nil, "model-a")
	require.ErrorIs(t, err, fatal)
	assert.Equal(t, []string{"model-a"}, provider.models, "fatal errors must not advance the ladder")
}

func TestLadderAllModelsExhausted(t *testing.T) {
	provider := &scriptedProvider{
		responses: []scriptedResponse{
			{err: errors.New("503 first")},
			{err: errors.New("quota second")},
			{err: errors.New("overloaded third")},
		},
	}
	ladder := NewLadder(provider, singleAttemptRetrier(), []string{"model-b", "model-c"}, nil)

	_, err := ladder.Generate(context.Background(), nil, "model-a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "third", "the last candidate's error must surface")
	assert.Equal(t, []string{"model-a", "model-b", "model-c"}, provider.models)
}

func TestLadderDeduplicatesCandidates(t *testing.T) {
	provider := &scriptedProvider{
		responses: []scriptedResponse{
			{err: errors.New("503 unavailable")},
			{err: errors.New("503 unavailable")},
		},
	}
	ladder := NewLadder(provider, singleAttemptRetrier(), []string{"model-a", "model-b"}, nil)

	_, err := ladder.Generate(context.Background(), nil, "model-a")
	require.Error(t, err)
	assert.Equal(t, []string{"model-a", "model-b"}, provider.models, "primary repeated in fallbacks must run once")
}

func TestLadderRetriesWithinCandidate(t *testing.T) {
	provider := &scriptedProvider{
		responses: []scriptedResponse{
			{err: errors.New("rate limited")},
			{text: "second attempt ok"},
		},
	}
	ladder := NewLadder(provider, retry.NewRetrier(2, nil), []string{"model-b"}, nil)

	result, err := ladder.Generate(context.Background(), nil, "model-a")
	require.NoError(t, err)
	assert.Equal(t, "second attempt ok", result)
	assert.Equal(t, []string{"model-a", "model-a"}, provider.models, "retry stays on the same candidate")
}
