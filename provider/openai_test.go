package provider

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ZaguanLabs/clipling"
)

func TestBuildSystemPrompt(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	req := Request{
		Text:   "Hello",
		Target: clipling.LanguageSpanish,
	}

	prompt := p.buildSystemPrompt(req)

	if !strings.Contains(prompt, "translates text into Spanish") {
		t.Errorf("Prompt should name the target language, got: %s", prompt)
	}
	if !strings.Contains(prompt, "only the translation text") {
		t.Errorf("Prompt should restrict output to the translation, got: %s", prompt)
	}
	if strings.Contains(prompt, "source text is in") {
		t.Errorf("Prompt should not mention a source without detection, got: %s", prompt)
	}
}

func TestBuildSystemPrompt_WithSource(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	req := Request{
		Text:   "Hello",
		Target: clipling.LanguageRussian,
		Source: clipling.LanguageEnglish,
	}

	prompt := p.buildSystemPrompt(req)

	if !strings.Contains(prompt, "translates text into Russian") {
		t.Errorf("Prompt should name the target language, got: %s", prompt)
	}
	if !strings.Contains(prompt, "The source text is in English.") {
		t.Errorf("Prompt should name the detected source, got: %s", prompt)
	}
}

func TestOpenAIProvider_Defaults(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	if p.model != DefaultModel {
		t.Errorf("Expected default model %q, got %q", DefaultModel, p.model)
	}
	if p.temperature != 0.3 {
		t.Errorf("Expected default temperature 0.3, got %f", p.temperature)
	}
	if p.maxTokens != 1024 {
		t.Errorf("Expected default max tokens 1024, got %d", p.maxTokens)
	}
}

func TestOpenAIProvider_ValidatesRequest(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})
	ctx := context.Background()

	_, err := p.Translate(ctx, Request{Text: "   ", Target: clipling.LanguageSpanish})
	var argErr *clipling.InvalidArgumentError
	if !errors.As(err, &argErr) || argErr.Param != "text" {
		t.Errorf("Expected InvalidArgumentError for empty text, got: %v", err)
	}

	_, err = p.Translate(ctx, Request{Text: "Hello", Target: clipling.Language("XX")})
	if !errors.As(err, &argErr) || argErr.Param != "target" {
		t.Errorf("Expected InvalidArgumentError for invalid target, got: %v", err)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"rate limit", errors.New("Rate limit exceeded"), true},
		{"timeout", errors.New("request timeout"), true},
		{"connection refused", errors.New("dial tcp: connection refused"), true},
		{"temporary", errors.New("temporary failure"), true},
		{"503", errors.New("status code 503"), true},
		{"429", errors.New("status code 429"), true},
		{"invalid key", errors.New("invalid API key"), false},
		{"bad request", errors.New("status code 400"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isRetryableError(tt.err)
			if result != tt.expected {
				t.Errorf("isRetryableError(%v) = %v, want %v", tt.err, result, tt.expected)
			}
		})
	}
}

func TestMockProvider(t *testing.T) {
	m := NewMockProvider()
	ctx := context.Background()

	result, err := m.Translate(ctx, Request{
		Text:   "Hello",
		Target: clipling.LanguageSpanish,
	})
	if err != nil {
		t.Fatalf("MockProvider.Translate failed: %v", err)
	}

	if result != "Hola" {
		t.Errorf("Expected 'Hola', got %q", result)
	}

	// Unknown text comes back bracketed
	result, err = m.Translate(ctx, Request{
		Text:   "Unknown text",
		Target: clipling.LanguageGerman,
	})
	if err != nil {
		t.Fatalf("MockProvider.Translate failed: %v", err)
	}

	if result != "[Unknown text→DE]" {
		t.Errorf("Expected bracketed fallback, got %q", result)
	}

	if m.CallCount != 2 {
		t.Errorf("Expected CallCount 2, got %d", m.CallCount)
	}

	if m.LastRequest.Target != clipling.LanguageGerman {
		t.Errorf("Expected LastRequest to record DE, got %s", m.LastRequest.Target)
	}
}

func TestMockProvider_Err(t *testing.T) {
	m := NewMockProvider()
	m.Err = &clipling.ProviderError{Message: "forced failure"}

	_, err := m.Translate(context.Background(), Request{
		Text:   "Hello",
		Target: clipling.LanguageSpanish,
	})
	if err == nil {
		t.Fatal("Expected forced error")
	}
}
