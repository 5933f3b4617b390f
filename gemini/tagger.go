package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fwojciec/papertree"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// maxOutputTokens bounds the length of the model's answer.
const maxOutputTokens = 6000

var _ papertree.Tagger = (*Tagger)(nil)

// Tagger implements papertree.Tagger using Google Gemini.
type Tagger struct {
	client *genai.Client
	model  string
	prompt string
}

// NewTagger creates a new Tagger. An empty model selects DefaultModel.
func NewTagger(client *genai.Client, model string) *Tagger {
	if model == "" {
		model = DefaultModel
	}
	return &Tagger{client: client, model: model, prompt: papertree.SpecimenPrompt}
}

// Tag returns the model's trimmed answer for text.
func (t *Tagger) Tag(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", papertree.Errorf(papertree.EINVALID, "text required")
	}

	result, err := t.client.Models.GenerateContent(ctx, t.model,
		[]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)},
		BuildConfig(t.prompt),
	)
	if err != nil {
		return "", translateError(err)
	}
	if result == nil {
		return "", papertree.Errorf(papertree.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for tagging calls:
// the prompt as system instruction, deterministic sampling and a bounded
// answer.
func BuildConfig(prompt string) *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: prompt}},
		},
		Temperature:     &temp,
		MaxOutputTokens: maxOutputTokens,
	}
}

func translateError(err error) error {
	code := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr):
		code = apiErrPtr.Code
	default:
		return fmt.Errorf("generate content: %w", err)
	}
	switch {
	case code == http.StatusTooManyRequests:
		return papertree.Errorf(papertree.ERATELIMIT, "rate limit exceeded: %v", err)
	case code >= 500:
		return papertree.Errorf(papertree.EUNAVAILABLE, "API unavailable: %v", err)
	}
	return fmt.Errorf("generate content: %w", err)
}
