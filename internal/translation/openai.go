package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIBackend translates with a chat completion model
type OpenAIBackend struct {
	apiKey string
	client *openai.Client
	model  string
}

// NewOpenAIBackend creates an OpenAI backend. baseURL overrides the API endpoint when set.
func NewOpenAIBackend(apiKey, baseURL string) *OpenAIBackend {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIBackend{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(cfg),
		model:  openai.GPT4oMini,
	}
}

// Name returns the backend name
func (b *OpenAIBackend) Name() string {
	return "openai"
}

// Translate asks the model for the translation only
func (b *OpenAIBackend) Translate(ctx context.Context, text, source, target string) (string, error) {
	if b.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	req := openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf("You translate dictionary text from language code %q to language code %q. Respond with only the translation, nothing else.", source, target),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		MaxTokens:   300,
		Temperature: 0.2,
	}

	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
