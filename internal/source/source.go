// Package source resolves the log text to analyze: an on-disk file, an
// inline string, or the built-in sample used for demonstration runs.
package source

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/loghint/loghint/internal/model"
)

// Resolver obtains raw log text from one of three places. It never fails past
// its own boundary: an unreadable file degrades to empty text with the reason
// logged on the narration stream.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver creates a resolver that narrates via logger.
func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve returns the log text and a short description of its origin.
// A file path wins over an inline string when both are given; with neither,
// the built-in sample is used.
func (r *Resolver) Resolve(filePath, literal string) (text, origin string) {
	if filePath != "" {
		return r.readFile(filePath), "file " + filePath
	}
	if literal != "" {
		r.logger.Debug("using inline log string", "chars", len(literal))
		return literal, "inline log string"
	}
	r.logger.Info("no log input given, using the built-in sample log")
	return Sample(), "built-in sample log"
}

func (r *Resolver) readFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Warn("could not read log file", "path", path, "error", err)
		return ""
	}
	r.logger.Info("log file read", "path", path, "bytes", len(data))
	return string(data)
}

// sampleEntries is the fixed demonstration payload. Timestamps are static so
// repeated runs produce byte-identical samples.
var sampleEntries = []model.LogEntry{
	{Timestamp: "2023-10-27T10:00:00Z", Level: "ERROR", Message: "Failed to connect to database", Service: "auth-service"},
	{Timestamp: "2023-10-27T10:00:05Z", Level: "ERROR", Message: "NullPointerException in UserServlet", Service: "user-service"},
	{Timestamp: "2023-10-27T10:01:00Z", Level: "WARN", Message: "High latency detected for payment-gateway", Service: "checkout-service"},
}

// sampleJSON is serialized once at package init; the input is static.
var sampleJSON = func() string {
	out, err := json.MarshalIndent(sampleEntries, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(out)
}()

// Sample returns the built-in demonstration log as indented JSON.
func Sample() string {
	return sampleJSON
}
