package notifier

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/loghint/loghint/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleReport() model.Report {
	return model.Report{
		Origin:      "file ci.log",
		Suggestion:  "- Check the database credentials\n- Retry the deploy",
		GeneratedAt: time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestSlackNotifier_PayloadFormat(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewSlackNotifier(srv.URL, srv.Client(), discardLogger())
	if err := n.Notify(context.Background(), sampleReport()); err != nil {
		t.Fatalf("Notify() = %v, want nil", err)
	}

	var payload slackPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	if len(payload.Blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(payload.Blocks))
	}
	if payload.Blocks[0].Type != "header" || payload.Blocks[0].Text.Text != "🔍 CI/CD Log Analysis" {
		t.Errorf("block[0] = %+v, want the analysis header", payload.Blocks[0])
	}
	if payload.Blocks[1].Type != "section" || len(payload.Blocks[1].Fields) != 2 {
		t.Fatalf("block[1] not a 2-field section")
	}
	if got := payload.Blocks[1].Fields[0].Text; got != "*Source:*\nfile ci.log" {
		t.Errorf("source field = %q", got)
	}
	if got := payload.Blocks[2].Text.Text; got != sampleReport().Suggestion {
		t.Errorf("suggestion section = %q", got)
	}
	if payload.Blocks[3].Type != "divider" {
		t.Errorf("block[3] type = %q, want divider", payload.Blocks[3].Type)
	}
}

func TestSlackNotifier_SlackReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewSlackNotifier(srv.URL, srv.Client(), discardLogger())
	if err := n.Notify(context.Background(), sampleReport()); err == nil {
		t.Error("expected error on a 500 response, got nil")
	}
}

func TestSlackNotifier_RateLimitedIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	n := NewSlackNotifier(srv.URL, srv.Client(), discardLogger())
	err := n.Notify(context.Background(), sampleReport())
	if err == nil {
		t.Fatal("expected error on 429, got nil")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error %q does not mention the status", err)
	}
	if c := calls.Load(); c != 1 {
		t.Errorf("expected a single HTTP call, got %d", c)
	}
}

func TestSlackNotifier_TruncatesLongSuggestion(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := sampleReport()
	r.Suggestion = strings.Repeat("x", maxSectionText+500)

	n := NewSlackNotifier(srv.URL, srv.Client(), discardLogger())
	if err := n.Notify(context.Background(), r); err != nil {
		t.Fatalf("Notify() = %v", err)
	}

	var payload slackPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := payload.Blocks[2].Text.Text
	if len(got) != maxSectionText {
		t.Errorf("suggestion section length = %d, want %d", len(got), maxSectionText)
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("truncated suggestion should end with an ellipsis")
	}
}

// recordingNotifier captures the last report for assertions.
type recordingNotifier struct {
	last model.Report
}

func (r *recordingNotifier) Notify(_ context.Context, report model.Report) error {
	r.last = report
	return nil
}

func TestSendTestReport(t *testing.T) {
	rec := &recordingNotifier{}
	if err := SendTestReport(context.Background(), rec); err != nil {
		t.Fatalf("SendTestReport() = %v", err)
	}
	if rec.last.Origin != "integration test" {
		t.Errorf("Origin = %q, want the test origin marker", rec.last.Origin)
	}
	if rec.last.Suggestion == "" || rec.last.GeneratedAt.IsZero() {
		t.Errorf("test report incomplete: %+v", rec.last)
	}
}
