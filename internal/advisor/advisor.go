// Package advisor turns raw log text into a troubleshooting suggestion. It
// owns the prompt shape, the completion Client abstraction, and the mapping
// from classified backend failures to stable suggestion strings.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Fixed suggestions synthesized locally when no backend reply is available.
// Callers match on these exact strings, so they must stay stable.
const (
	msgEmptyLog    = "No specific suggestions: Log content was empty."
	msgNoAPIKey    = "AI analysis skipped: no API key was provided. Set OPENAI_API_KEY to enable suggestions."
	msgAuthFailed  = "Could not get AI suggestion: the completion service rejected the API key. Check OPENAI_API_KEY."
	msgRateLimited = "Could not get AI suggestion: the completion service rate limit was exceeded. Try again later."

	msgAPIErrorFmt   = "Could not get AI suggestion: API error (status %d): %s"
	msgUnexpectedFmt = "Could not get AI suggestion due to an unexpected error: %v"
)

// Advisor produces suggestions for log text via a completion Client.
type Advisor struct {
	client Client // nil when no backend is configured (missing credential)
	logger *slog.Logger
}

// New creates an advisor. A nil client disables analysis: every Advise call
// then returns the fixed skip message without any remote traffic.
func New(client Client, logger *slog.Logger) *Advisor {
	return &Advisor{client: client, logger: logger}
}

// Outcome is the result of one analysis. Suggestion is always non-empty;
// when the backend was skipped or failed it holds a synthesized explanation.
type Outcome struct {
	Suggestion string
	Analyzed   bool  // true when a backend produced the suggestion
	Err        error // classified backend failure, nil otherwise
}

// Advise produces a suggestion for logs. Every failure path is terminal: no
// retries, no partial results, never an empty suggestion.
func (a *Advisor) Advise(ctx context.Context, logs string) Outcome {
	if logs == "" {
		a.logger.Warn("no log content to analyze")
		return Outcome{Suggestion: msgEmptyLog}
	}
	if a.client == nil {
		a.logger.Warn("no API key configured, skipping analysis")
		return Outcome{Suggestion: msgNoAPIKey}
	}

	p := BuildPrompt(logs)
	a.logger.Debug("prompt assembled", "system_chars", len(p.System), "user_chars", len(p.User))

	reply, err := a.client.Complete(ctx, p)
	if err != nil {
		a.logger.Error("completion failed", "error", err)
		return Outcome{Suggestion: suggestionForError(err), Err: err}
	}
	return Outcome{Suggestion: reply, Analyzed: true}
}

// suggestionForError maps a classified failure to its fixed suggestion.
func suggestionForError(err error) string {
	var apiErr *APIError
	switch {
	case errors.Is(err, ErrUnauthorized):
		return msgAuthFailed
	case errors.Is(err, ErrRateLimited):
		return msgRateLimited
	case errors.As(err, &apiErr):
		return fmt.Sprintf(msgAPIErrorFmt, apiErr.StatusCode, apiErr.Message)
	default:
		return fmt.Sprintf(msgUnexpectedFmt, err)
	}
}

// Preview returns at most the first 500 characters of s, for narrating
// what is about to be analyzed.
func Preview(s string) string {
	const max = 500
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
