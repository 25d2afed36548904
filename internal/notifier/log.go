package notifier

import (
	"context"
	"log/slog"

	"github.com/loghint/loghint/internal/model"
)

// Ensure LogNotifier implements model.Notifier.
var _ model.Notifier = (*LogNotifier)(nil)

// LogNotifier writes analysis reports to the given logger as structured messages.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a notifier that logs each report via slog.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the report with its source and suggestion.
// Returns nil (stderr logging does not fail).
func (n *LogNotifier) Notify(_ context.Context, r model.Report) error {
	n.logger.Info("analysis report",
		"source", r.Origin,
		"generated_at", r.GeneratedAt,
		"suggestion", r.Suggestion,
	)
	return nil
}
