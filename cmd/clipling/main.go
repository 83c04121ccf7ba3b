// Command clipling translates clipboard text using AI.
//
// It reads the clipboard (or explicit text), detects the source language,
// picks a target from the configured preferences and session history,
// translates through an OpenAI-compatible API and copies the result back.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ZaguanLabs/clipling"
	"github.com/ZaguanLabs/clipling/cache"
	"github.com/ZaguanLabs/clipling/clipboard"
	"github.com/ZaguanLabs/clipling/config"
	"github.com/ZaguanLabs/clipling/provider"
)

const translateTimeout = 90 * time.Second

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	// .env is optional; real environments set the key directly.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("clipling", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	targetFlag := fs.String("target", "", "Target language code (e.g., EN, DE); overrides automatic selection")
	textFlag := fs.String("text", "", "Text to translate (default: clipboard contents)")
	allTargets := fs.Bool("all", false, "Translate into every configured target language")
	noCopy := fs.Bool("no-copy", false, "Do not copy the translation back to the clipboard")
	listLangs := fs.Bool("list", false, "List configured target languages")
	detectOnly := fs.Bool("detect", false, "Only detect and print the source language")
	model := fs.String("model", "", "Model to use (default: from config)")
	apiKey := fs.String("api-key", "", "API key (default: OPENROUTER_API_KEY env)")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	showVersion := fs.Bool("version", false, "Show version")
	debug := fs.Bool("debug", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", clipling.Name, clipling.FullVersion())
		if clipling.BuildDate != "unknown" && clipling.BuildDate != "" {
			fmt.Fprintf(stdout, "  built: %s\n", clipling.BuildDate)
		}
		return nil
	}

	logger := newLogger(*debug)
	defer logger.Sync() // #nosec G104 - stderr sync failure is harmless

	cfg, err := config.Load()
	if err != nil {
		logger.Warnw("falling back to default configuration", "error", err)
	}

	if *listLangs {
		for _, lang := range cfg.Targets() {
			marker := " "
			switch lang {
			case cfg.Primary():
				marker = "*"
			case cfg.Secondary():
				marker = "+"
			}
			fmt.Fprintf(stdout, "%s %s  %s\n", marker, lang.Code(), lang.Name())
		}
		fmt.Fprintln(stdout, "\n* primary  + secondary")
		return nil
	}

	// Resolve input text.
	var raw string
	switch {
	case *textFlag != "":
		raw = *textFlag
	case fs.NArg() > 0:
		raw = strings.Join(fs.Args(), " ")
	default:
		raw, err = clipboard.NewService().Read()
		if err != nil {
			return err
		}
	}

	text := strings.TrimSpace(clipling.PlainText(raw))
	if text == "" {
		return fmt.Errorf("nothing to translate")
	}
	logger.Debugw("input ready", "chars", len(text))

	detector := clipling.NewLinguaDetector(cfg.Targets()...)
	src, detected := detector.Detect(text)
	if detected {
		logger.Debugw("detected source language", "lang", src.Code())
	} else {
		logger.Debugw("source language detection failed")
	}

	if *detectOnly {
		if detected {
			fmt.Fprintln(stdout, src.Code())
			return nil
		}
		fmt.Fprintln(stdout, "unknown")
		return nil
	}

	// Pick the target: explicit flag wins, otherwise the preference rule.
	last := config.LoadLastLanguage()
	var target clipling.Language
	if *targetFlag != "" {
		parsed, ok := clipling.ParseLanguage(*targetFlag)
		if !ok {
			return &clipling.InvalidArgumentError{Param: "target", Value: *targetFlag}
		}
		target = parsed
	} else {
		target, err = clipling.SelectTarget(src, cfg.Primary(), cfg.Secondary(), last)
		if err != nil {
			return err
		}
		// Stay within the configured list, like the desktop UI that only
		// offers buttons for listed languages.
		if !cfg.HasTarget(target) {
			logger.Warnw("selected target not in configured list", "target", target.Code())
			if last.Valid() && cfg.HasTarget(last) {
				target = last
			} else {
				target = cfg.Secondary()
			}
		}
	}

	key := *apiKey
	if key == "" {
		key = os.Getenv("OPENROUTER_API_KEY")
	}
	if key == "" {
		return fmt.Errorf("API key required (--api-key or OPENROUTER_API_KEY env)")
	}

	modelName := cfg.Model
	if *model != "" {
		modelName = *model
	}

	p := provider.NewOpenAIProvider(provider.OpenAIConfig{
		APIKey:  key,
		Model:   modelName,
		BaseURL: cfg.APIURL,
	})

	// Rate limit inside the retry loop so retries also wait for a token.
	limited := clipling.NewRateLimitedProvider(p, clipling.RateLimitConfig{RequestsPerMinute: 30})
	wrapped := clipling.NewRetryableProvider(limited, clipling.DefaultRetryConfig())

	translationCache, memCache, err := buildCache(cfg, logger)
	if err != nil {
		logger.Warnw("cache unavailable, continuing without", "error", err)
	}

	opts := []clipling.TranslatorOption{clipling.WithDetector(detector)}
	if translationCache != nil {
		opts = append(opts, clipling.WithCache(translationCache))
	}
	translator := clipling.NewTranslator(wrapped, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), translateTimeout)
	defer cancel()

	start := time.Now()

	if *allTargets {
		results, err := translator.TranslateAll(ctx, text, cfg.Targets())
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}
		persistCache(cfg, memCache, logger)
		return outputAll(stdout, cfg.Targets(), results, *jsonOutput)
	}

	result, err := translator.Translate(ctx, text, target)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}
	elapsed := time.Since(start)

	if *jsonOutput {
		if err := outputJSON(stdout, result, elapsed); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(stdout, result.Text)
	}

	if !*quiet && !*jsonOutput {
		from := "??"
		if result.Source.Valid() {
			from = result.Source.Code()
		}
		note := ""
		if result.Cached {
			note = ", cached"
		}
		fmt.Fprintf(stderr, "%s → %s in %v%s\n", from, result.Target.Code(), elapsed.Round(time.Millisecond), note)
	}

	if !*noCopy {
		if err := clipboard.NewService().Write(result.Text); err != nil {
			logger.Warnw("could not copy result to clipboard", "error", err)
		}
	}

	if err := config.SaveLastLanguage(target); err != nil {
		logger.Warnw("could not persist last target language", "error", err)
	}
	persistCache(cfg, memCache, logger)

	return nil
}

// buildCache picks the configured cache backend. The memory cache is also
// returned separately so the caller can persist it to disk afterwards.
func buildCache(cfg config.Config, logger *zap.SugaredLogger) (clipling.TranslationCache, *cache.InMemoryCache, error) {
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(cache.RedisConfig{
			URL: cfg.RedisURL,
			TTL: cfg.CacheTTLSeconds,
		})
		if err != nil {
			return nil, nil, err
		}
		return rc, nil, nil
	}

	mem := cache.NewInMemoryCache(cfg.CacheTTLSeconds)
	path, err := cacheFilePath(cfg)
	if err != nil {
		return mem, mem, err
	}
	if loaded, err := cache.LoadFile(path, mem); err != nil {
		logger.Warnw("could not load cache file", "path", path, "error", err)
	} else if loaded > 0 {
		logger.Debugw("loaded cache file", "path", path, "entries", loaded)
	}
	return mem, mem, nil
}

// persistCache writes the in-memory cache back to disk, if one is in use.
func persistCache(cfg config.Config, mem *cache.InMemoryCache, logger *zap.SugaredLogger) {
	if mem == nil {
		return
	}
	path, err := cacheFilePath(cfg)
	if err != nil {
		return
	}
	meta := map[string]string{"app": clipling.UserAgent()}
	if err := cache.SaveFile(path, mem, meta); err != nil {
		logger.Warnw("could not save cache file", "path", path, "error", err)
	}
}

// cacheFilePath resolves the translation cache file location. Relative
// paths are anchored at the config directory.
func cacheFilePath(cfg config.Config) (string, error) {
	name := cfg.CacheFile
	if name == "" {
		name = "cache.json"
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// outputAll prints one line per target, in the configured order.
func outputAll(w io.Writer, order []clipling.Language, results map[clipling.Language]*clipling.Result, jsonOut bool) error {
	if jsonOut {
		out := make(map[string]string, len(results))
		for lang, result := range results {
			out[lang.Code()] = result.Text
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, lang := range order {
		if result, ok := results[lang]; ok {
			fmt.Fprintf(w, "%s  %s\n", lang.Code(), result.Text)
		}
	}
	return nil
}

// JSONOutput represents the JSON output format.
type JSONOutput struct {
	Text      string `json:"text"`
	Source    string `json:"source,omitempty"`
	Target    string `json:"target"`
	Cached    bool   `json:"cached"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

// outputJSON writes a single translation result as JSON.
func outputJSON(w io.Writer, result *clipling.Result, elapsed time.Duration) error {
	out := JSONOutput{
		Text:      result.Text,
		Target:    result.Target.Code(),
		Cached:    result.Cached,
		ElapsedMs: elapsed.Milliseconds(),
	}
	if result.Source.Valid() {
		out.Source = result.Source.Code()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// newLogger builds the diagnostic logger. Warnings only by default; the
// translation itself goes to stdout, not the log.
func newLogger(debug bool) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
