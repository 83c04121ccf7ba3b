// Package clipling translates clipboard text using AI providers.
//
// Clipling detects the language of a piece of text, picks a translation
// target from the user's preferences and session history, and translates
// via an OpenAI-compatible chat-completion API with caching.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/clipling"
//	    "github.com/ZaguanLabs/clipling/cache"
//	    "github.com/ZaguanLabs/clipling/provider"
//	)
//
//	func main() {
//	    p := provider.NewOpenAIProvider(provider.OpenAIConfig{
//	        APIKey: os.Getenv("OPENROUTER_API_KEY"),
//	    })
//
//	    detector := clipling.NewLinguaDetector()
//	    t := clipling.NewTranslator(p,
//	        clipling.WithCache(cache.NewInMemoryCache(3600)),
//	        clipling.WithDetector(detector),
//	    )
//
//	    src, _ := detector.Detect("Guten Tag")
//	    target, err := clipling.SelectTarget(src,
//	        clipling.LanguageEnglish, clipling.LanguageGerman, clipling.LanguageUnknown)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    result, err := t.Translate(context.Background(), "Guten Tag", target)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.Text) // Good day
//	}
package clipling
