// Package llm wraps the external chat-completion provider behind a small
// synchronous client. The provider is Groq's OpenAI-compatible endpoint;
// calls are blocking, with no retry and no client-side timeout.
package llm

import (
	"context"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"synthesistalk-backend/internal/apperr"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer is the completion gateway consumed by the workflow and the
// document handlers.
type Completer interface {
	Complete(ctx context.Context, messages []Message, temperature float64) (string, error)
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// GroqClient talks to the fixed chat-completion model. When the API key is
// absent the client still constructs, and every call fails with
// UpstreamMisconfigured; the server boots either way.
type GroqClient struct {
	model llms.Model
}

func NewGroqClient(cfg Config) (*GroqClient, error) {
	if cfg.APIKey == "" {
		return &GroqClient{}, nil
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}
	return &GroqClient{model: model}, nil
}

// Complete sends the full message sequence and returns the assistant text.
// Provider failures surface the raw provider error in the detail.
func (c *GroqClient) Complete(ctx context.Context, messages []Message, temperature float64) (string, error) {
	if c.model == nil {
		return "", apperr.New(apperr.CodeUpstreamMisconfigured, "GROQ_API_KEY not set")
	}

	msgContents := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		var msgType schema.ChatMessageType
		switch m.Role {
		case "system":
			msgType = schema.ChatMessageTypeSystem
		case "assistant":
			msgType = schema.ChatMessageTypeAI
		default:
			msgType = schema.ChatMessageTypeHuman
		}
		msgContents = append(msgContents, llms.TextParts(msgType, m.Content))
	}

	resp, err := c.model.GenerateContent(ctx, msgContents, llms.WithTemperature(temperature))
	if err != nil {
		return "", apperr.Wrap(apperr.CodeUpstreamUnavailable, "Groq error: "+err.Error(), err)
	}
	if len(resp.Choices) == 0 {
		return "", apperr.New(apperr.CodeUpstreamUnavailable, "Groq error: no choices returned")
	}
	return resp.Choices[0].Content, nil
}
