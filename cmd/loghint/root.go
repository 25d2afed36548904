package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/loghint/loghint/internal/advisor"
	"github.com/loghint/loghint/internal/config"
	"github.com/loghint/loghint/internal/model"
	"github.com/loghint/loghint/internal/notifier"
)

var (
	cfgPath string
	debug   bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "loghint",
	Short: "AI-assisted CI/CD log analysis",
	Long:  "Loghint reads a failed pipeline's logs and asks an LLM for concise, actionable fixes.",
	// Default to `analyze` so that `loghint --log-file build.log` works
	// without naming a subcommand, the way CI steps invoke it.
	RunE:              runAnalyze,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: LOGHINT_CONFIG env var or ./loghint.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output, print only the suggestion")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > LOGHINT_CONFIG env var > "./loghint.yaml".
// A missing file is only an error when it was named explicitly.
func loadConfig(path string) (*config.Config, error) {
	explicit := path != ""
	if !explicit {
		if env := os.Getenv("LOGHINT_CONFIG"); env != "" {
			path = env
			explicit = true
		} else {
			path = "loghint.yaml"
		}
	}
	if !explicit {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return config.Default()
		}
	}
	return config.Load(path)
}

func setupLogger(dbg, qt bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	} else if qt {
		logLevel = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// buildClient picks the completion backend. Offline mode uses the
// keyword analyzer; a missing API key returns nil, which makes the
// advisor skip analysis.
func buildClient(cfg *config.Config, logger *slog.Logger) advisor.Client {
	if cfg.Offline {
		logger.Info("offline mode, using keyword analyzer")
		return advisor.NewKeywordClient()
	}
	if cfg.APIKey == "" {
		return nil
	}
	httpClient := &http.Client{Timeout: cfg.Timeout}
	return advisor.NewOpenAIClient(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Temperature, httpClient, logger)
}

// setupNotifier builds the configured delivery channel, or (nil, nil)
// when delivery is disabled.
func setupNotifier(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) (model.Notifier, error) {
	switch cfg.Notification.Type {
	case "slack":
		logger.Info("using slack notifier")
		return notifier.NewSlackNotifier(cfg.Notification.WebhookURL, httpClient, logger), nil
	case "github":
		prNumber := cfg.Notification.PRNumber
		if prNumber == 0 {
			if n, ok := notifier.DetectPRNumber(os.Getenv("GITHUB_REF")); ok {
				prNumber = n
			}
		}
		logger.Info("using github notifier", "repository", cfg.Notification.Repository, "pr", prNumber)
		return notifier.NewGitHubNotifier(os.Getenv("GITHUB_TOKEN"), cfg.Notification.Repository, prNumber, logger)
	case "log":
		return notifier.NewLogNotifier(logger), nil
	default:
		return nil, nil
	}
}
