package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZaguanLabs/clipling"
	"github.com/sashabaranov/go-openai"
)

// Defaults match the OpenRouter setup clipling ships with. Any
// OpenAI-compatible endpoint works by overriding BaseURL and Model.
const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "openai/gpt-4o"
)

// OpenAIProvider implements AIProvider using an OpenAI-compatible chat API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // API key for the endpoint
	Model       string  // Model to use (default: "openai/gpt-4o")
	Temperature float32 // Temperature for generation (default: 0.3)
	MaxTokens   int     // Response token cap (default: 1024)
	BaseURL     string  // Endpoint base URL (default: OpenRouter)
}

// NewOpenAIProvider creates a new OpenAI-compatible provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Translate translates a single text using the chat-completion API.
func (p *OpenAIProvider) Translate(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", &clipling.InvalidArgumentError{Param: "text", Value: req.Text}
	}
	if !req.Target.Valid() {
		return "", &clipling.InvalidArgumentError{Param: "target", Value: string(req.Target)}
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.buildSystemPrompt(req)},
			{Role: openai.ChatMessageRoleUser, Content: req.Text},
		},
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		return "", &clipling.ProviderError{
			Message:   "chat completion failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &clipling.ProviderError{
			Message:   "no choices in response",
			Retryable: true,
		}
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", &clipling.ProviderError{
			Message:   "empty translation in response",
			Retryable: true,
		}
	}

	return translated, nil
}

// buildSystemPrompt renders the translation instruction for the target
// language, naming the source language when detection produced one.
func (p *OpenAIProvider) buildSystemPrompt(req Request) string {
	prompt := fmt.Sprintf("You are a helpful assistant that translates text into %s. Provide only the translation text and nothing else.", req.Target.Name())
	if req.Source.Valid() {
		prompt += fmt.Sprintf(" The source text is in %s.", req.Source.Name())
	}
	return prompt
}

func isRetryableError(err error) bool {
	// Check for common retryable conditions
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIProvider implements AIProvider
var _ AIProvider = (*OpenAIProvider)(nil)
