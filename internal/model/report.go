package model

import (
	"context"
	"time"
)

// Report is the outcome of one analysis run, handed to notifiers.
type Report struct {
	Origin      string    // where the log text came from (file path, inline string, built-in sample)
	Suggestion  string    // final troubleshooting text
	GeneratedAt time.Time // our clock, set when the suggestion was produced
}

// Notifier delivers an analysis report to an external channel (Slack, a
// pull-request comment, the process log). Delivery is best-effort: a failed
// Notify never alters what was already written to stdout.
type Notifier interface {
	Notify(ctx context.Context, r Report) error
}
