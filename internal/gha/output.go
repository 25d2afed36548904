// Package gha integrates with GitHub Actions step outputs.
package gha

import (
	"fmt"
	"os"
	"strings"
)

// StepOutputPath returns the file GitHub Actions designates for step
// outputs via GITHUB_OUTPUT, or "" when not running under Actions.
func StepOutputPath() string {
	return os.Getenv("GITHUB_OUTPUT")
}

// WriteStepOutput appends key=value to the Actions output file in the
// heredoc form, so multi-line values survive. The delimiter is extended
// until it no longer collides with the value.
func WriteStepOutput(path, key, value string) error {
	delim := "LOGHINT_EOF"
	for strings.Contains(value, delim) {
		delim += "_"
	}
	if !strings.HasSuffix(value, "\n") {
		value += "\n"
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open step output file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s<<%s\n%s%s\n", key, delim, value, delim); err != nil {
		return fmt.Errorf("write step output: %w", err)
	}
	return nil
}
