package stream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advisor-portal-be/pkg/llm"
)

func collect(events <-chan Event) []Event {
	var out []Event
	for e := range events {
		out = append(out, e)
	}
	return out
}

func TestSimulateFiveWords(t *testing.T) {
	events := collect(Simulate(context.Background(), "one two three four five", 0))

	require.Len(t, events, 6, "five content events plus one done")
	words := []string{"one ", "two ", "three ", "four ", "five "}
	for i, w := range words {
		assert.Equal(t, w, events[i].Content)
		assert.False(t, events[i].Done)
	}
	assert.True(t, events[5].Done)
	assert.Empty(t, events[5].Content)
}

func TestSimulateEmptyText(t *testing.T) {
	events := collect(Simulate(context.Background(), "", 0))
	require.Len(t, events, 1)
	assert.True(t, events[0].Done)
}

func TestSimulateCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	events := Simulate(ctx, "a b c d e f g h", 50*time.Millisecond)
	first, ok := <-events
	require.True(t, ok)
	assert.Equal(t, "a ", first.Content)

	cancel()

	var rest []Event
	for e := range events {
		rest = append(rest, e)
	}
	for _, e := range rest {
		assert.False(t, e.Done, "no done event after consumer cancellation")
	}
}

func TestForwardNormalCompletion(t *testing.T) {
	chunks := make(chan llm.Chunk, 3)
	chunks <- llm.Chunk{Text: "hel"}
	chunks <- llm.Chunk{Text: "lo"}
	close(chunks)

	events := collect(Forward(context.Background(), chunks))
	require.Len(t, events, 3)
	assert.Equal(t, "hel", events[0].Content)
	assert.Equal(t, "lo", events[1].Content)
	assert.True(t, events[2].Done)
}

func TestForwardChunkError(t *testing.T) {
	chunks := make(chan llm.Chunk, 2)
	chunks <- llm.Chunk{Text: "partial"}
	chunks <- llm.Chunk{Err: errors.New("connection reset")}
	close(chunks)

	events := collect(Forward(context.Background(), chunks))
	require.Len(t, events, 2)
	assert.Equal(t, "partial", events[0].Content)
	assert.Equal(t, "connection reset", events[1].Error)
	assert.False(t, events[1].Done)
}

func TestErrorStream(t *testing.T) {
	events := collect(ErrorStream("model unreachable"))
	require.Len(t, events, 1)
	assert.Equal(t, "model unreachable", events[0].Error)
}
