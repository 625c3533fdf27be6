package retry

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"503 status", errors.New("gemini error: status 503, body: upstream"), true},
		{"service unavailable", errors.New("Service Unavailable"), true},
		{"overloaded", errors.New("the model is OVERLOADED right now"), true},
		{"rate limited", errors.New("429 Rate limit exceeded for this project"), true},
		{"quota lowercase", errors.New("resource quota exhausted"), true},
		{"quota mixed case", errors.New("You exceeded your QuOtA"), true},
		{"auth failure", errors.New("401 invalid API key"), false},
		{"malformed request", errors.New("400 invalid argument: contents required"), false},
		{"dns failure", errors.New("dial tcp: lookup generativelanguage.googleapis.com: no such host"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsTransientWrapped(t *testing.T) {
	err := fmt.Errorf("generate candidate: %w", errors.New("quota exceeded"))
	if !IsTransient(err) {
		t.Error("wrapped quota error should classify as transient")
	}
}
