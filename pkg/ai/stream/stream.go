package stream

import (
	"context"
	"strings"
	"time"

	"advisor-portal-be/pkg/llm"
)

// Event is one frame of a response stream. Exactly one Done or Error
// event terminates a well-formed stream; nothing follows it.
type Event struct {
	Content string `json:"content,omitempty"`
	Done    bool   `json:"done,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DefaultChunkDelay spaces out simulated chunks so the client renders
// the response progressively instead of in one burst.
const DefaultChunkDelay = 10 * time.Millisecond

// Simulate chunks a complete text word by word, emitting one content
// event per word followed by a done event. Callers that got a full
// response from a non-streaming path use this to present the same
// contract as a native stream. Cancellation stops emission without a
// terminal event; the consumer is gone.
func Simulate(ctx context.Context, text string, delay time.Duration) <-chan Event {
	out := make(chan Event)
	go func() {
		defer close(out)
		for _, word := range strings.Fields(text) {
			select {
			case out <- Event{Content: word + " "}:
			case <-ctx.Done():
				return
			}
			if delay > 0 {
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return
				}
			}
		}
		select {
		case out <- Event{Done: true}:
		case <-ctx.Done():
		}
	}()
	return out
}

// Forward adapts a provider token stream to the event contract: each
// chunk becomes a content event in arrival order, normal channel close
// becomes done, a chunk error becomes a terminal error event.
func Forward(ctx context.Context, chunks <-chan llm.Chunk) <-chan Event {
	out := make(chan Event)
	go func() {
		defer close(out)
		for {
			select {
			case chunk, ok := <-chunks:
				if !ok {
					select {
					case out <- Event{Done: true}:
					case <-ctx.Done():
					}
					return
				}
				if chunk.Err != nil {
					select {
					case out <- Event{Error: chunk.Err.Error()}:
					case <-ctx.Done():
					}
					return
				}
				select {
				case out <- Event{Content: chunk.Text}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// ErrorStream emits a single terminal error event. Used when a request
// fails before any content was produced.
func ErrorStream(message string) <-chan Event {
	out := make(chan Event, 1)
	out <- Event{Error: message}
	close(out)
	return out
}
