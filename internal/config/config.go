package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for a loghint run.
type Config struct {
	Model        string        // chat model identifier, e.g. "gpt-4o-mini"
	BaseURL      string        // defaults to https://api.openai.com/v1
	APIKey       string        // expanded from env var by Load
	Temperature  float32       // sampling temperature for the completion call
	Timeout      time.Duration // per-request timeout
	Offline      bool          // use the built-in keyword analyzer instead of the API
	Notification NotificationConfig
}

// NotificationConfig controls where the report is delivered besides stdout.
type NotificationConfig struct {
	Type       string `yaml:"type"`        // "log", "slack" or "github"; empty disables delivery
	WebhookURL string `yaml:"webhook_url"` // required if type is "slack"
	Repository string `yaml:"repository"`  // "owner/repo", required if type is "github"
	PRNumber   int    `yaml:"pr_number"`   // detected from GITHUB_REF when unset
}

const (
	defaultModel         = "gpt-4o-mini"
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultTimeout       = 60 * time.Second
	defaultTemperature   = 0.2
)

// rawConfig is used for YAML unmarshaling (duration as string, unset
// temperature distinguishable from an explicit zero).
type rawConfig struct {
	Model        string             `yaml:"model"`
	BaseURL      string             `yaml:"base_url"`
	APIKey       string             `yaml:"api_key"`
	Temperature  *float32           `yaml:"temperature"`
	Timeout      string             `yaml:"timeout"`
	Offline      bool               `yaml:"offline"`
	Notification NotificationConfig `yaml:"notification"`
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return fromRaw(raw)
}

// Default returns the configuration used when no config file exists.
// Environment variables still apply.
func Default() (*Config, error) {
	return fromRaw(rawConfig{})
}

func fromRaw(raw rawConfig) (*Config, error) {
	timeout := defaultTimeout
	if raw.Timeout != "" {
		var err error
		timeout, err = time.ParseDuration(raw.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse timeout %q: %w", raw.Timeout, err)
		}
	}

	temperature := float32(defaultTemperature)
	if raw.Temperature != nil {
		temperature = *raw.Temperature
	}

	cfg := &Config{
		Model:        raw.Model,
		BaseURL:      raw.BaseURL,
		APIKey:       raw.APIKey,
		Temperature:  temperature,
		Timeout:      timeout,
		Offline:      raw.Offline,
		Notification: raw.Notification,
	}

	// File values win over the environment, the environment over built-ins.
	if cfg.Model == "" {
		cfg.Model = os.Getenv("OPENAI_MODEL")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenAIBaseURL
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Notification.Type == "github" && cfg.Notification.Repository == "" {
		cfg.Notification.Repository = os.Getenv("GITHUB_REPOSITORY")
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %v", cfg.Temperature)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", cfg.Timeout)
	}

	switch cfg.Notification.Type {
	case "", "none", "log":
	case "slack":
		if cfg.Notification.WebhookURL == "" {
			return fmt.Errorf("notification.webhook_url is required when type is \"slack\"")
		}
		if !strings.HasPrefix(cfg.Notification.WebhookURL, "https://hooks.slack.com/") {
			return fmt.Errorf("notification.webhook_url must start with https://hooks.slack.com/")
		}
	case "github":
		if cfg.Notification.Repository == "" {
			return fmt.Errorf("notification.repository is required when type is \"github\"")
		}
		if strings.Count(cfg.Notification.Repository, "/") != 1 {
			return fmt.Errorf("notification.repository must look like \"owner/repo\", got %q", cfg.Notification.Repository)
		}
	default:
		return fmt.Errorf("notification.type must be \"log\", \"slack\" or \"github\", got %q", cfg.Notification.Type)
	}

	return nil
}
