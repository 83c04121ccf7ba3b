package clipling

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Language is an upper-case ISO 639-1 language code. The set of supported
// languages is closed: values outside the constants below never pass Valid,
// which keeps unknown codes out at the boundary.
type Language string

const (
	// LanguageUnknown is the zero value. It stands for "detection failed"
	// on the source side and "no history" on the session side.
	LanguageUnknown Language = ""

	LanguageEnglish    Language = "EN"
	LanguageRussian    Language = "RU"
	LanguagePortuguese Language = "PT"
	LanguageUkrainian  Language = "UK"
	LanguageGerman     Language = "DE"
	LanguageFrench     Language = "FR"
	LanguageSpanish    Language = "ES"
	LanguageItalian    Language = "IT"
	LanguagePolish     Language = "PL"
)

// languageNames maps codes to human-readable names used in AI prompts.
var languageNames = map[Language]string{
	LanguageEnglish:    "English",
	LanguageRussian:    "Russian",
	LanguagePortuguese: "Portuguese",
	LanguageUkrainian:  "Ukrainian",
	LanguageGerman:     "German",
	LanguageFrench:     "French",
	LanguageSpanish:    "Spanish",
	LanguageItalian:    "Italian",
	LanguagePolish:     "Polish",
}

// linguaByLanguage maps supported languages to their lingua counterparts.
var linguaByLanguage = map[Language]lingua.Language{
	LanguageEnglish:    lingua.English,
	LanguageRussian:    lingua.Russian,
	LanguagePortuguese: lingua.Portuguese,
	LanguageUkrainian:  lingua.Ukrainian,
	LanguageGerman:     lingua.German,
	LanguageFrench:     lingua.French,
	LanguageSpanish:    lingua.Spanish,
	LanguageItalian:    lingua.Italian,
	LanguagePolish:     lingua.Polish,
}

// SupportedLanguages returns every language clipling can detect and
// translate into, in a stable order.
func SupportedLanguages() []Language {
	return []Language{
		LanguageEnglish,
		LanguageRussian,
		LanguagePortuguese,
		LanguageUkrainian,
		LanguageGerman,
		LanguageFrench,
		LanguageSpanish,
		LanguageItalian,
		LanguagePolish,
	}
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	_, ok := languageNames[l]
	return ok
}

// Code returns the ISO 639-1 code ("EN", "RU", ...).
func (l Language) Code() string {
	return string(l)
}

// Name returns the human-readable English name for AI prompts.
// Falls back to the code itself for unsupported values.
func (l Language) Name() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return string(l)
}

// ParseLanguage parses a language code ("EN") or an English language name
// ("English"). Names are accepted for compatibility with session files
// written by older releases. Matching is case-insensitive.
func ParseLanguage(s string) (Language, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LanguageUnknown, false
	}

	code := Language(strings.ToUpper(s))
	if code.Valid() {
		return code, true
	}

	for lang, name := range languageNames {
		if strings.EqualFold(s, name) {
			return lang, true
		}
	}

	return LanguageUnknown, false
}

// Lingua converts l to the lingua detector's language type.
func (l Language) Lingua() (lingua.Language, bool) {
	lang, ok := linguaByLanguage[l]
	return lang, ok
}

// FromLingua converts a lingua detection result to a Language.
// Languages outside the supported set map to LanguageUnknown.
func FromLingua(lang lingua.Language) Language {
	code := Language(strings.ToUpper(lang.IsoCode639_1().String()))
	if code.Valid() {
		return code
	}
	return LanguageUnknown
}
