package advisor

import (
	"context"
	"strings"
)

// Ensure KeywordClient implements Client.
var _ Client = (*KeywordClient)(nil)

// KeywordClient is an offline backend that pattern-matches well-known CI/CD
// failure signatures instead of calling a remote model. It keeps the tool
// useful in pipelines that cannot reach the network or hold an API key.
type KeywordClient struct{}

// NewKeywordClient returns a KeywordClient.
func NewKeywordClient() *KeywordClient {
	return &KeywordClient{}
}

// Complete scans the user message for failure signatures and returns canned
// advice for the first matching rule. It never fails.
func (k *KeywordClient) Complete(_ context.Context, p Prompt) (string, error) {
	lowered := strings.ToLower(p.User)
	switch {
	case strings.Contains(lowered, "terraform plan") && strings.Contains(lowered, "error"):
		return adviceTerraform, nil
	case strings.Contains(p.User, "500 Internal Server Error"):
		return adviceServerError, nil
	case strings.Contains(lowered, "timeout"):
		return adviceTimeout, nil
	default:
		return adviceGeneric, nil
	}
}

const adviceTerraform = `Detected a Terraform plan error.

- Check your Terraform configuration for syntax errors or resource misconfigurations.
- Ensure all required variables are set.
- Verify provider versions are compatible with your configuration.`

const adviceServerError = `Detected an Internal Server Error.

- Review application logs on the affected server.
- Look for stack traces or specific error messages around the time of the failure.`

const adviceTimeout = `Detected a timeout.

- Investigate network connectivity between the involved services.
- Check for resource exhaustion (CPU, memory, network bandwidth) on the affected systems.`

const adviceGeneric = `No specific critical issue detected by the offline rules.

- Review the logs manually for warnings or errors.
- Re-run with an API key to get a model-generated analysis.`
