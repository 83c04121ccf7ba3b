package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZaguanLabs/clipling"
)

// The last chosen target lives in its own small file rather than in
// config.toml: it changes on every translation and should never clobber
// hand-edits to the config.
const lastLanguageFileName = "last_language.txt"

// LastLanguagePath returns the session state file path.
func LastLanguagePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, lastLanguageFileName), nil
}

// LoadLastLanguage reads the most recently chosen target language.
// Returns LanguageUnknown when there is no usable history, which the
// selector treats as "no previous choice".
func LoadLastLanguage() clipling.Language {
	path, err := LastLanguagePath()
	if err != nil {
		return clipling.LanguageUnknown
	}
	return LoadLastLanguageFrom(path)
}

// LoadLastLanguageFrom is LoadLastLanguage for an explicit file path.
// The file holds an upper-case ISO code; full English names are accepted
// for files written by older releases.
func LoadLastLanguageFrom(path string) clipling.Language {
	data, err := os.ReadFile(path) // #nosec G304 - path is the user's own state file
	if err != nil {
		return clipling.LanguageUnknown
	}

	lang, ok := clipling.ParseLanguage(strings.TrimSpace(string(data)))
	if !ok {
		return clipling.LanguageUnknown
	}
	return lang
}

// SaveLastLanguage persists the chosen target language for the next run.
func SaveLastLanguage(lang clipling.Language) error {
	path, err := LastLanguagePath()
	if err != nil {
		return err
	}
	return SaveLastLanguageTo(path, lang)
}

// SaveLastLanguageTo writes the session state atomically (tmp + rename).
func SaveLastLanguageTo(path string, lang clipling.Language) error {
	if !lang.Valid() {
		return &clipling.InvalidArgumentError{Param: "lang", Value: string(lang)}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(lang.Code()), 0o644); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return os.Rename(tmp, path)
}

// ClearLastLanguage removes the session state. Missing state is not an error.
func ClearLastLanguage() error {
	path, err := LastLanguagePath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
