package advisor

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// Ensure OpenAIClient implements Client.
var _ Client = (*OpenAIClient)(nil)

// OpenAIClient talks to an OpenAI-compatible chat-completion endpoint.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      *slog.Logger
}

// NewOpenAIClient creates a client targeting baseURL with the given model and
// sampling temperature. httpClient carries the request timeout.
func NewOpenAIClient(baseURL, apiKey, model string, temperature float32, httpClient *http.Client, logger *slog.Logger) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = httpClient
	return &OpenAIClient{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: temperature,
		logger:      logger,
	}
}

// Complete sends the prompt and returns the first choice's message content.
func (c *OpenAIClient) Complete(ctx context.Context, p Prompt) (string, error) {
	c.logger.Info("sending completion request", "model", c.model)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.System},
			{Role: openai.ChatMessageRoleUser, Content: p.User},
		},
	})
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// classify translates go-openai errors into the stable classes the advisor
// maps to fixed suggestions. Unrecognized errors pass through unchanged.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(reqErr.HTTPStatusCode, http.StatusText(reqErr.HTTPStatusCode))
	}
	return err
}

func classifyStatus(code int, message string) error {
	switch code {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return &APIError{StatusCode: code, Message: message}
	}
}
