package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/tidwall/gjson"
)

type ChatRequest struct {
	Prompt      string
	Temperature float64
	MaxTokens   int64
}

// ProviderError is a non-2xx reply from the chat-completion endpoint.
// Message is what the provider put in its error body, if anything.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider returned %d", e.StatusCode)
	}
	return fmt.Sprintf("provider returned %d: %s", e.StatusCode, e.Message)
}

type OpenAIClient struct {
	client *openai.Client
	model  string
}

// New builds a client for one request. Retries are off: a failed call is
// reported straight back to the caller.
func New(apiKey, baseURL, model string, httpClient *http.Client) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &OpenAIClient{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Complete sends a single user message and returns the text of the first choice.
func (c *OpenAIClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.F(c.model),
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		}),
		Temperature: openai.F(req.Temperature),
		MaxTokens:   openai.F(req.MaxTokens),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &ProviderError{
				StatusCode: apiErr.StatusCode,
				Message:    providerMessage(apiErr),
			}
		}
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func providerMessage(apiErr *openai.Error) string {
	// the SDK re-populates the body after decoding the error
	if apiErr.Response != nil && apiErr.Response.Body != nil {
		if body, err := io.ReadAll(apiErr.Response.Body); err == nil {
			if msg := MessageFromErrorBody(body); msg != "" {
				return msg
			}
		}
	}
	return strings.TrimSpace(apiErr.Message)
}

// MessageFromErrorBody returns error.message from an OpenAI-style error body,
// or "" when the body has no such field.
func MessageFromErrorBody(body []byte) string {
	return strings.TrimSpace(gjson.GetBytes(body, "error.message").String())
}
