package advisor

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"
)

//go:embed prompts/system.md
var systemPromptRaw string

//go:embed prompts/user.md
var userPromptRaw string

// userTemplate wraps the log text into the user message. Parsed once at
// package init; reused on every BuildPrompt call.
var userTemplate = template.Must(template.New("user").Parse(userPromptRaw))

// Prompt is the ordered two-message conversation sent to the model.
type Prompt struct {
	System string
	User   string
}

// BuildPrompt assembles the fixed system instruction and a user message
// embedding the log text in a fenced block. Deterministic: equal log text
// yields byte-identical prompts. The text passes through whole; the remote
// service's own input limit is the effective bound.
func BuildPrompt(logs string) Prompt {
	var user bytes.Buffer
	// Static template over a plain string; Execute cannot fail here.
	if err := userTemplate.Execute(&user, struct{ Logs string }{Logs: logs}); err != nil {
		panic(err)
	}
	return Prompt{
		System: strings.TrimSpace(systemPromptRaw),
		User:   user.String(),
	}
}
