package redesign

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = `You are a senior web designer. You produce complete,
valid, self-contained HTML5 documents with inline CSS. Respond with the
document only, no explanation.`

var errNoChoices = errors.New("model returned no choices")

// OpenAIGenerator adapts an OpenAI-compatible chat client to Generator.
// Any backend that speaks the chat-completion API works through BaseURL.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator builds a Generator for the given credentials. An
// empty baseURL keeps the default OpenAI endpoint.
func NewOpenAIGenerator(apiKey, baseURL, model string) *OpenAIGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// GenerateHTML sends one chat completion and returns the model's document.
func (g *OpenAIGenerator) GenerateHTML(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errNoChoices
	}
	return stripCodeFence(resp.Choices[0].Message.Content), nil
}

// stripCodeFence unwraps a ```html ... ``` fenced response. Models often
// fence despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```html")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
