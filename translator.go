package clipling

import (
	"context"
	"strings"
)

// AIProvider is the interface for AI translation backends.
type AIProvider interface {
	Translate(ctx context.Context, req Request) (string, error)
}

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Translator translates single pieces of text through an AIProvider,
// consulting a cache first and skipping the provider entirely when the
// text already is in the target language.
type Translator struct {
	provider      AIProvider
	cache         TranslationCache
	detector      LanguageDetector
	sourceLang    Language
	maxConcurrent int
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithCache sets the translation cache.
func WithCache(cache TranslationCache) TranslatorOption {
	return func(t *Translator) {
		t.cache = cache
	}
}

// WithDetector sets the language detector used for the source-equals-target
// bypass and for annotating results with the detected source language.
func WithDetector(detector LanguageDetector) TranslatorOption {
	return func(t *Translator) {
		t.detector = detector
	}
}

// WithSourceLang declares the source language up front, skipping detection.
func WithSourceLang(lang Language) TranslatorOption {
	return func(t *Translator) {
		t.sourceLang = lang
	}
}

// WithConcurrency caps the number of in-flight provider calls made by
// TranslateAll. Values below 1 are ignored.
func WithConcurrency(n int) TranslatorOption {
	return func(t *Translator) {
		if n >= 1 {
			t.maxConcurrent = n
		}
	}
}

// NewTranslator creates a new Translator backed by the given provider.
func NewTranslator(provider AIProvider, opts ...TranslatorOption) *Translator {
	t := &Translator{
		provider:      provider,
		maxConcurrent: 3,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Translate translates text into the target language.
//
// When the declared or detected source equals the target, the original
// text is returned without a provider call. Cache hits likewise skip the
// provider.
func (t *Translator) Translate(ctx context.Context, text string, target Language) (*Result, error) {
	if !target.Valid() {
		return nil, &InvalidArgumentError{Param: "target", Value: string(target)}
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, &TranslationError{Message: "nothing to translate"}
	}

	src := t.sourceLang
	if !src.Valid() && t.detector != nil {
		if detected, ok := t.detector.Detect(trimmed); ok {
			src = detected
		}
	}

	// Already in the target language.
	if src == target {
		return &Result{Text: trimmed, Source: src, Target: target}, nil
	}

	key := CacheKey(HashText(trimmed), target)
	if t.cache != nil {
		if cached, ok := t.cache.Get(key); ok {
			return &Result{Text: cached, Source: src, Target: target, Cached: true}, nil
		}
	}

	if t.provider == nil {
		return nil, &TranslationError{Message: "no provider configured"}
	}

	translated, err := t.provider.Translate(ctx, Request{
		Text:   trimmed,
		Target: target,
		Source: src,
	})
	if err != nil {
		return nil, err
	}

	translated = strings.TrimSpace(translated)
	if t.cache != nil {
		_ = t.cache.Set(key, translated) // Ignore cache set errors
	}

	return &Result{Text: translated, Source: src, Target: target}, nil
}
