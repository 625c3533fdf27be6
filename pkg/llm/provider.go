package llm

import (
	"context"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Chunk is one piece of a streamed model response. A non-nil Err is
// terminal; otherwise the channel closing marks normal completion.
type Chunk struct {
	Text string
	Err  error
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature       float64
	MaxTokens         int
	Model             string // Override default model
	SystemInstruction string // Injected as system message / systemInstruction
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithSystemInstruction(instruction string) Option {
	return func(o *Options) {
		o.SystemInstruction = instruction
	}
}

// ResolveOptions folds a variadic option list into a concrete Options
// value. Providers use this to read the caller's settings.
func ResolveOptions(options ...Option) Options {
	var o Options
	for _, opt := range options {
		opt(&o)
	}
	return o
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}

// StreamingProvider is implemented by backends with an incremental API.
// Callers type-assert; when the assertion fails, the word-chunk simulation
// in pkg/ai/stream provides the same consumer contract.
type StreamingProvider interface {
	// ChatStream sends a chat history and returns tokens as they arrive.
	// The channel is closed on normal completion; a Chunk with Err set is
	// the last element on failure. Producers must stop promptly when ctx
	// is cancelled.
	ChatStream(ctx context.Context, history []Message, options ...Option) (<-chan Chunk, error)
}
