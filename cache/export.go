package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// fileFormat is the JSON structure used to persist the cache on disk.
type fileFormat struct {
	Version  string            `json:"version"`
	SavedAt  string            `json:"saved_at"`
	Entries  map[string]string `json:"entries"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// SaveFile persists the non-expired entries of an in-memory cache to a JSON
// file so translations survive between runs. The write is atomic: a
// temporary file is renamed over the destination.
func SaveFile(path string, c *InMemoryCache, metadata map[string]string) error {
	out := fileFormat{
		Version:  "1.0",
		SavedAt:  time.Now().UTC().Format(time.RFC3339),
		Entries:  c.Entries(),
		Metadata: metadata,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp) // #nosec G304 - path comes from user configuration
	if err != nil {
		return fmt.Errorf("creating cache file: %w", err)
	}

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encoding cache file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing cache file: %w", err)
	}

	return os.Rename(tmp, path)
}

// LoadFile loads previously saved entries into a cache. A missing file is
// not an error; it simply loads nothing. Returns the number of entries
// loaded.
func LoadFile(path string, c TranslationCache) (int, error) {
	f, err := os.Open(path) // #nosec G304 - path comes from user configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("opening cache file: %w", err)
	}
	defer f.Close()

	return load(f, c)
}

func load(r io.Reader, c TranslationCache) (int, error) {
	var in fileFormat
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return 0, fmt.Errorf("decoding cache file: %w", err)
	}

	loaded := 0
	for key, value := range in.Entries {
		if err := c.Set(key, value); err != nil {
			continue
		}
		loaded++
	}

	return loaded, nil
}
