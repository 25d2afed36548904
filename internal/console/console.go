// Package console routes human narration and machine output onto
// separate streams.
package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Console separates progress chatter from the final result. Narration
// goes to narr (stderr in production) and the suggestion to result
// (stdout), so shell pipelines capture only the suggestion.
type Console struct {
	narr   io.Writer
	result io.Writer
	quiet  bool
	spin   *spinner.Spinner
}

func New(narr, result io.Writer, quiet bool) *Console {
	return &Console{narr: narr, result: result, quiet: quiet}
}

// Header prints the run banner with the resolved log origin.
func (c *Console) Header(origin string) {
	if c.quiet {
		return
	}
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintln(c.narr, "🔍 loghint — CI/CD log analysis")
	fmt.Fprintf(c.narr, "📄 Source: %s\n\n", origin)
}

// Narratef prints a line of progress chatter. Suppressed in quiet mode.
func (c *Console) Narratef(format string, args ...any) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.narr, format+"\n", args...)
}

// Successf marks a completed step.
func (c *Console) Successf(format string, args ...any) {
	if c.quiet {
		return
	}
	green := color.New(color.FgGreen)
	green.Fprintf(c.narr, "✓ "+format+"\n", args...)
}

// Failf marks a failed step.
func (c *Console) Failf(format string, args ...any) {
	if c.quiet {
		return
	}
	red := color.New(color.FgRed)
	red.Fprintf(c.narr, "✗ "+format+"\n", args...)
}

// StartStep shows a spinner while a slow call is in flight.
func (c *Console) StartStep(msg string) {
	if c.quiet {
		return
	}
	c.spin = spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(c.narr))
	c.spin.Suffix = " " + msg
	c.spin.Start()
}

// StopStep halts the spinner started by StartStep, if any.
func (c *Console) StopStep() {
	if c.spin != nil {
		c.spin.Stop()
		c.spin = nil
	}
}

// Suggestion emits the analysis result on the machine-readable stream,
// terminated by exactly one newline. It is never suppressed.
func (c *Console) Suggestion(text string) {
	if strings.HasSuffix(text, "\n") {
		fmt.Fprint(c.result, text)
		return
	}
	fmt.Fprintln(c.result, text)
}
