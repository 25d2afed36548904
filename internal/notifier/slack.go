package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/loghint/loghint/internal/model"
)

// Slack caps section text at 3000 characters.
const maxSectionText = 3000

// Ensure SlackNotifier implements model.Notifier.
var _ model.Notifier = (*SlackNotifier)(nil)

// SlackNotifier delivers analysis reports to a Slack channel via
// Incoming Webhooks.
type SlackNotifier struct {
	webhookURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSlackNotifier returns a notifier that posts each report to Slack via webhook.
func NewSlackNotifier(webhookURL string, httpClient *http.Client, logger *slog.Logger) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Notify posts the report as a Block Kit message. Single attempt: the
// run is one-shot and delivery is best-effort, so a failed post is
// reported, not retried.
func (s *SlackNotifier) Notify(ctx context.Context, r model.Report) error {
	payload := buildPayload(r)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	resp, err := s.post(ctx, body)
	if err != nil {
		return fmt.Errorf("post to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack returned %d", resp.StatusCode)
	}
	s.logger.Info("slack message sent", "source", r.Origin)
	return nil
}

func (s *SlackNotifier) post(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return s.httpClient.Do(req)
}

// Block Kit payload types.

type slackPayload struct {
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type   string      `json:"type"`
	Text   *slackText  `json:"text,omitempty"`
	Fields []slackText `json:"fields,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func buildPayload(r model.Report) slackPayload {
	generated := r.GeneratedAt.UTC().Format(time.RFC1123)

	blocks := []slackBlock{
		{
			Type: "header",
			Text: &slackText{Type: "plain_text", Text: "🔍 CI/CD Log Analysis"},
		},
		{
			Type: "section",
			Fields: []slackText{
				{Type: "mrkdwn", Text: "*Source:*\n" + r.Origin},
				{Type: "mrkdwn", Text: "*Generated:*\n" + generated},
			},
		},
		{
			Type: "section",
			Text: &slackText{Type: "mrkdwn", Text: truncate(r.Suggestion, maxSectionText)},
		},
		{Type: "divider"},
	}

	return slackPayload{Blocks: blocks}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// SendTestReport sends a dummy report to verify the integration works.
func SendTestReport(ctx context.Context, n model.Notifier) error {
	return n.Notify(ctx, model.Report{
		Origin:      "integration test",
		Suggestion:  "- This is a test notification. Your delivery channel is wired up correctly.",
		GeneratedAt: time.Now(),
	})
}
