package clipling

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// LanguageDetector identifies the language of a piece of text.
type LanguageDetector interface {
	// Detect returns the detected language and true, or LanguageUnknown
	// and false when no confident detection is possible.
	Detect(text string) (Language, bool)
}

// LinguaDetector detects languages with the lingua-go statistical models.
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector builds a detector restricted to the given languages.
// With no arguments it covers all supported languages. Restricting the set
// improves both accuracy and startup time, so callers should pass the
// languages they actually expect.
func NewLinguaDetector(languages ...Language) *LinguaDetector {
	if len(languages) == 0 {
		languages = SupportedLanguages()
	}

	candidates := make([]lingua.Language, 0, len(languages))
	for _, lang := range languages {
		if ll, ok := lang.Lingua(); ok {
			candidates = append(candidates, ll)
		}
	}

	// lingua needs at least two candidates to discriminate between.
	if len(candidates) < 2 {
		candidates = nil
		for _, lang := range SupportedLanguages() {
			if ll, ok := lang.Lingua(); ok {
				candidates = append(candidates, ll)
			}
		}
	}

	return &LinguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build(),
	}
}

// Detect implements LanguageDetector.
func (d *LinguaDetector) Detect(text string) (Language, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return LanguageUnknown, false
	}

	detected, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return LanguageUnknown, false
	}

	lang := FromLingua(detected)
	return lang, lang.Valid()
}

// Verify LinguaDetector implements LanguageDetector
var _ LanguageDetector = (*LinguaDetector)(nil)
