package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GITHUB_REPOSITORY", "")
}

func TestLoad_ValidConfig(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
model: gpt-4o
base_url: https://llm.internal.example/v1
api_key: sk-test
temperature: 0.7
timeout: 90s
offline: true
notification:
  type: slack
  webhook_url: https://hooks.slack.com/services/T0/B0/xyz
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.BaseURL != "https://llm.internal.example/v1" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.APIKey != "sk-test" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Temperature = %v", cfg.Temperature)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if !cfg.Offline {
		t.Error("Offline = false, want true")
	}
	if cfg.Notification.Type != "slack" {
		t.Errorf("Notification.Type = %q", cfg.Notification.Type)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err == nil {
		t.Fatal("Load: expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "model: [broken")
	if _, err := Load(path); err == nil {
		t.Fatal("Load: expected error for invalid YAML")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != defaultModel {
		t.Errorf("Model = %q, want %q", cfg.Model, defaultModel)
	}
	if cfg.BaseURL != defaultOpenAIBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, defaultOpenAIBaseURL)
	}
	if cfg.Temperature != defaultTemperature {
		t.Errorf("Temperature = %v, want %v", cfg.Temperature, defaultTemperature)
	}
	if cfg.Timeout != defaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, defaultTimeout)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
}

func TestLoad_ExplicitZeroTemperature(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "temperature: 0")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Temperature != 0 {
		t.Errorf("Temperature = %v, want explicit 0 preserved", cfg.Temperature)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEST_OPENAI_KEY", "sk-from-env")
	path := writeConfig(t, "api_key: ${TEST_OPENAI_KEY}")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "sk-from-env" {
		t.Errorf("APIKey = %q, want the expanded env value", cfg.APIKey)
	}
}

func TestDefault_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_MODEL", "gpt-4.1")
	t.Setenv("OPENAI_API_KEY", "sk-env")

	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if cfg.Model != "gpt-4.1" {
		t.Errorf("Model = %q, want the env override", cfg.Model)
	}
	if cfg.APIKey != "sk-env" {
		t.Errorf("APIKey = %q, want the env key", cfg.APIKey)
	}
}

func TestLoad_TemperatureOutOfRange(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "temperature: 3.5")
	if _, err := Load(path); err == nil {
		t.Fatal("Load: expected validation error for temperature above 2")
	}
}

func TestLoad_BadTimeout(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "timeout: soon")
	if _, err := Load(path); err == nil {
		t.Fatal("Load: expected error for unparseable timeout")
	}
}

func TestLoad_SlackRequiresWebhook(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
notification:
  type: slack
`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load: expected validation error when slack has no webhook_url")
	}
}

func TestLoad_SlackWebhookPrefix(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
notification:
  type: slack
  webhook_url: https://evil.example/hook
`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load: expected validation error for a non-Slack webhook host")
	}
}

func TestLoad_GitHubRepository(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
notification:
  type: github
`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load: expected validation error when github has no repository")
	}

	t.Setenv("GITHUB_REPOSITORY", "acme/widgets")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load with GITHUB_REPOSITORY: %v", err)
	}
	if cfg.Notification.Repository != "acme/widgets" {
		t.Errorf("Repository = %q, want the Actions-provided value", cfg.Notification.Repository)
	}
}

func TestLoad_UnknownNotificationType(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
notification:
  type: pager
`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load: expected validation error for unknown notification type")
	}
}

func TestLoad_NoneNotificationType(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
notification:
  type: none
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Notification.Type != "none" {
		t.Errorf("Notification.Type = %q, want %q", cfg.Notification.Type, "none")
	}
}
