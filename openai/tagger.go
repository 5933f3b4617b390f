// Package openai implements papertree.Tagger against OpenAI-compatible chat
// completion APIs, DeepSeek by default.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fwojciec/papertree"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

// DeepSeek endpoint and model used when no other provider is configured.
const (
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	DeepSeekModel   = "deepseek-chat"
)

// DefaultMaxTokens bounds the length of the model's answer.
const DefaultMaxTokens = 6000

var _ papertree.Tagger = (*Tagger)(nil)

// Tagger sends article text as the user message of a chat completion, with
// the specimen prompt as the system message, at temperature 0.
type Tagger struct {
	client    openai.Client
	model     string
	prompt    string
	maxTokens int64
}

// Option configures a Tagger.
type Option func(*Tagger)

// WithPrompt replaces papertree.SpecimenPrompt as the system message.
func WithPrompt(prompt string) Option {
	return func(t *Tagger) {
		t.prompt = prompt
	}
}

// WithMaxTokens overrides DefaultMaxTokens.
func WithMaxTokens(n int64) Option {
	return func(t *Tagger) {
		t.maxTokens = n
	}
}

// NewClient returns a chat client for the API at baseURL; an empty baseURL
// selects OpenAI. The client does not retry on its own: retries are the
// caller's decision.
func NewClient(apiKey, baseURL string) openai.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return openai.NewClient(opts...)
}

// NewTagger creates a new Tagger using model on client.
func NewTagger(client openai.Client, model string, opts ...Option) *Tagger {
	t := &Tagger{
		client:    client,
		model:     model,
		prompt:    papertree.SpecimenPrompt,
		maxTokens: DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tag returns the model's trimmed answer for text.
func (t *Tagger) Tag(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", papertree.Errorf(papertree.EINVALID, "text required")
	}

	resp, err := t.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(t.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(t.prompt),
			openai.UserMessage(text),
		},
		MaxTokens:   openai.Int(t.maxTokens),
		Temperature: openai.Float(0),
	})
	if err != nil {
		return "", translateError(err)
	}
	if len(resp.Choices) == 0 {
		return "", papertree.Errorf(papertree.EINTERNAL, "%s returned no choices", t.model)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// translateError maps API status codes onto retryable error codes.
func translateError(err error) error {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("chat completion: %w", err)
	}
	switch {
	case apiErr.StatusCode == http.StatusTooManyRequests:
		return papertree.Errorf(papertree.ERATELIMIT, "rate limit exceeded: %v", err)
	case apiErr.StatusCode >= 500:
		return papertree.Errorf(papertree.EUNAVAILABLE, "API unavailable: %v", err)
	case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
		return papertree.Errorf(papertree.EINVALID, "API key rejected: %v", err)
	}
	return fmt.Errorf("chat completion: %w", err)
}
