package clipling

// Request is a single translation request handed to an AIProvider.
type Request struct {
	Text   string   // Text to translate (trimmed)
	Target Language // Language to translate into
	Source Language // Detected source language, LanguageUnknown when unclear
}

// Result is the outcome of a translation.
type Result struct {
	Text   string   // Translated text
	Source Language // Detected source language, LanguageUnknown when unclear
	Target Language // Language the text was translated into
	Cached bool     // True when the translation came from the cache
}
