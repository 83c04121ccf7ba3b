package clipling_test

import (
	"context"
	"testing"

	"github.com/ZaguanLabs/clipling"
	"github.com/ZaguanLabs/clipling/cache"
	"github.com/ZaguanLabs/clipling/provider"
)

// Benchmarks for performance validation

func BenchmarkHashText(b *testing.B) {
	text := "Hello World, this is a sample text for hashing"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clipling.HashText(text)
	}
}

func BenchmarkCacheKey(b *testing.B) {
	hash := "a591a6d40bf420404a011733cfb7b190d62c65bf0bcda32b57b277d9ad9f146e"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clipling.CacheKey(hash, clipling.LanguageSpanish)
	}
}

func BenchmarkSelectTarget(b *testing.B) {
	cases := []clipling.Language{
		clipling.LanguageEnglish,
		clipling.LanguageRussian,
		clipling.LanguageGerman,
		clipling.LanguageUnknown,
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clipling.SelectTarget(cases[i%len(cases)], clipling.LanguageRussian, clipling.LanguageEnglish, clipling.LanguageGerman)
	}
}

func BenchmarkInMemoryCache_Get(b *testing.B) {
	c := cache.NewInMemoryCache(3600)
	c.Set("test-key", "test-value")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("test-key")
	}
}

func BenchmarkInMemoryCache_Set(b *testing.B) {
	c := cache.NewInMemoryCache(3600)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set("test-key", "test-value")
	}
}

func BenchmarkPlainText_Small(b *testing.B) {
	html := `<div><p>Hello World</p></div>`
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clipling.PlainText(html)
	}
}

func BenchmarkPlainText_Medium(b *testing.B) {
	html := `<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
	<nav><a href="/">Home</a><a href="/about">About</a></nav>
	<main>
		<h1>Welcome to Our Site</h1>
		<p>This is a paragraph with some text.</p>
		<p>Another paragraph here.</p>
		<ul>
			<li>Item one</li>
			<li>Item two</li>
			<li>Item three</li>
		</ul>
	</main>
	<footer><p>Copyright 2024</p></footer>
</body>
</html>`
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clipling.PlainText(html)
	}
}

func BenchmarkPlainText_NoMarkup(b *testing.B) {
	text := "Plain clipboard text with no markup at all, just words."
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clipling.PlainText(text)
	}
}

func BenchmarkTranslator_Cached(b *testing.B) {
	p := provider.NewMockProvider()
	c := cache.NewInMemoryCache(3600)

	translator := clipling.NewTranslator(p, clipling.WithCache(c))

	// Prime the cache
	translator.Translate(context.Background(), "Hello", clipling.LanguageSpanish)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		translator.Translate(context.Background(), "Hello", clipling.LanguageSpanish)
	}
}

func BenchmarkTranslator_Uncached(b *testing.B) {
	p := provider.NewMockProvider()
	translator := clipling.NewTranslator(p)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		translator.Translate(context.Background(), "Hello", clipling.LanguageSpanish)
	}
}

func BenchmarkParseLanguage(b *testing.B) {
	inputs := []string{"EN", "ru", "German", "french", "XX"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clipling.ParseLanguage(inputs[i%len(inputs)])
	}
}
