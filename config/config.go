// Package config loads and persists clipling's configuration and session
// state under the user's configuration directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/ZaguanLabs/clipling"
)

const (
	dirName        = "clipling"
	configFileName = "config.toml"
)

// Config is the persisted application configuration. Language fields hold
// codes or English names; use the typed accessors to get Language values.
type Config struct {
	APIURL            string   `toml:"api_url"`
	Model             string   `toml:"model"`
	PrimaryLanguage   string   `toml:"primary_language"`
	SecondaryLanguage string   `toml:"secondary_language"`
	TargetLanguages   []string `toml:"target_languages"`
	CacheTTLSeconds   int      `toml:"cache_ttl_seconds"`
	CacheFile         string   `toml:"cache_file"`
	RedisURL          string   `toml:"redis_url"`
}

// Default returns the configuration written on first run.
func Default() Config {
	targets := clipling.SupportedLanguages()
	codes := make([]string, len(targets))
	for i, lang := range targets {
		codes[i] = lang.Code()
	}

	return Config{
		APIURL:            "https://openrouter.ai/api/v1",
		Model:             "openai/gpt-4o",
		PrimaryLanguage:   clipling.LanguageRussian.Code(),
		SecondaryLanguage: clipling.LanguageEnglish.Code(),
		TargetLanguages:   codes,
		CacheTTLSeconds:   0, // translations don't go stale
	}
}

// Primary returns the configured primary language, falling back to the
// default when the stored value is unparseable.
func (c Config) Primary() clipling.Language {
	if lang, ok := clipling.ParseLanguage(c.PrimaryLanguage); ok {
		return lang
	}
	return clipling.LanguageRussian
}

// Secondary returns the configured secondary language, falling back to the
// default when the stored value is unparseable.
func (c Config) Secondary() clipling.Language {
	if lang, ok := clipling.ParseLanguage(c.SecondaryLanguage); ok {
		return lang
	}
	return clipling.LanguageEnglish
}

// Targets returns the selectable target languages. Unparseable entries are
// dropped; an empty result falls back to the full supported set.
func (c Config) Targets() []clipling.Language {
	var targets []clipling.Language
	seen := make(map[clipling.Language]bool)
	for _, s := range c.TargetLanguages {
		if lang, ok := clipling.ParseLanguage(s); ok && !seen[lang] {
			seen[lang] = true
			targets = append(targets, lang)
		}
	}
	if len(targets) == 0 {
		return clipling.SupportedLanguages()
	}
	return targets
}

// HasTarget reports whether lang is one of the selectable targets.
func (c Config) HasTarget(lang clipling.Language) bool {
	for _, t := range c.Targets() {
		if t == lang {
			return true
		}
	}
	return false
}

// Dir returns the clipling configuration directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determining config directory: %w", err)
	}
	return filepath.Join(base, dirName), nil
}

// Path returns the configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the configuration file, creating it with defaults when absent.
// An unparseable file is backed up next to the original and replaced with a
// fresh default, so a hand-edit gone wrong never loses the old contents.
// The returned Config is always usable, even when an error is reported.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom is Load for an explicit file path.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is the user's own config file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			if saveErr := SaveTo(path, cfg); saveErr != nil {
				return cfg, fmt.Errorf("writing default config: %w", saveErr)
			}
			return cfg, nil
		}
		return Default(), fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		backup := fmt.Sprintf("%s.invalid_%d", path, time.Now().Unix())
		if renameErr := os.Rename(path, backup); renameErr == nil {
			_ = SaveTo(path, Default())
		}
		return Default(), fmt.Errorf("parsing config file (backed up to %s): %w", backup, err)
	}

	cfg.normalize()
	return cfg, nil
}

// Save writes the configuration to the default location.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo validates and writes the configuration atomically (tmp + rename),
// so an interrupted run never leaves a truncated file behind.
func SaveTo(path string, cfg Config) error {
	cfg.normalize()

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return os.Rename(tmp, path)
}

// normalize fills in missing pieces: empty fields get defaults and the
// primary/secondary languages are guaranteed to be in the target list.
func (c *Config) normalize() {
	def := Default()

	if c.APIURL == "" {
		c.APIURL = def.APIURL
	}
	if c.Model == "" {
		c.Model = def.Model
	}
	if _, ok := clipling.ParseLanguage(c.PrimaryLanguage); !ok {
		c.PrimaryLanguage = def.PrimaryLanguage
	}
	if _, ok := clipling.ParseLanguage(c.SecondaryLanguage); !ok {
		c.SecondaryLanguage = def.SecondaryLanguage
	}
	if len(c.TargetLanguages) == 0 {
		c.TargetLanguages = def.TargetLanguages
	}

	if !c.HasTarget(c.Primary()) {
		c.TargetLanguages = append(c.TargetLanguages, c.Primary().Code())
	}
	if !c.HasTarget(c.Secondary()) {
		c.TargetLanguages = append(c.TargetLanguages, c.Secondary().Code())
	}
}
