package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/loghint/loghint/internal/advisor"
	"github.com/loghint/loghint/internal/config"
	"github.com/loghint/loghint/internal/console"
	"github.com/loghint/loghint/internal/gha"
	"github.com/loghint/loghint/internal/model"
	"github.com/loghint/loghint/internal/source"
)

var (
	logFile   string
	logString string
	offline   bool
	modelName string
)

func init() {
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "path to a log file to analyze")
	rootCmd.Flags().StringVar(&logString, "log-string", "", "log content passed directly on the command line")
	rootCmd.Flags().BoolVar(&offline, "offline", false, "use the built-in keyword analyzer instead of the completion API")
	rootCmd.Flags().StringVar(&modelName, "model", "", "chat model to use (overrides config)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug, quiet)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if offline {
		cfg.Offline = true
	}
	if modelName != "" {
		cfg.Model = modelName
	}

	out := console.New(os.Stderr, os.Stdout, quiet)

	logs, origin := source.NewResolver(logger).Resolve(logFile, logString)
	out.Header(origin)

	client := buildClient(cfg, logger)
	adv := advisor.New(client, logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	if logs != "" {
		out.Narratef("Log preview:\n%s", advisor.Preview(logs))
		if client != nil && !cfg.Offline {
			out.Narratef("Sending logs to %s for analysis...", cfg.Model)
		}
	}
	out.StartStep("Analyzing logs...")
	outcome := adv.Advise(ctx, logs)
	out.StopStep()

	if outcome.Err != nil {
		out.Failf("analysis failed")
		logger.Error("analysis failed", "error", outcome.Err)
	} else if outcome.Analyzed {
		out.Successf("analysis complete")
	}

	// The suggestion itself always lands on stdout, whatever happened.
	out.Suggestion(outcome.Suggestion)

	if path := gha.StepOutputPath(); path != "" {
		if err := gha.WriteStepOutput(path, "suggestion", outcome.Suggestion); err != nil {
			logger.Warn("could not write step output", "error", err)
		}
	}

	deliver(cmd.Context(), cfg, outcome, origin, logger)

	if code := exitCodeFor(outcome.Err); code != 0 {
		os.Exit(code)
	}
	return nil
}

// deliver sends the report to the configured channel. Only real
// analyses are delivered, never skip or failure messages.
func deliver(ctx context.Context, cfg *config.Config, outcome advisor.Outcome, origin string, logger *slog.Logger) {
	if !outcome.Analyzed || cfg.Notification.Type == "" {
		return
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	n, err := setupNotifier(cfg, httpClient, logger)
	if err != nil {
		logger.Warn("notifier unavailable", "error", err)
		return
	}
	if n == nil {
		return
	}

	report := model.Report{
		Origin:      origin,
		Suggestion:  outcome.Suggestion,
		GeneratedAt: time.Now(),
	}
	if err := n.Notify(ctx, report); err != nil {
		logger.Warn("notification failed", "error", err)
	}
}

// exitCodeFor maps an analysis failure to the process exit code.
// Only auth failures and hard API errors make the step fail.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	var apiErr *advisor.APIError
	switch {
	case errors.Is(err, advisor.ErrUnauthorized):
		return 2
	case errors.As(err, &apiErr):
		return 2
	default:
		return 0
	}
}
