package clipling

import (
	"context"
	"sync"
)

// TranslateAll translates text into every given target concurrently.
//
// Provider calls are bounded by the translator's concurrency limit.
// Duplicate targets are collapsed. On failure the first error is returned
// together with the results that did complete, so callers can still show
// partial output.
func (t *Translator) TranslateAll(ctx context.Context, text string, targets []Language) (map[Language]*Result, error) {
	unique := make([]Language, 0, len(targets))
	seen := make(map[Language]bool)
	for _, target := range targets {
		if !seen[target] {
			seen[target] = true
			unique = append(unique, target)
		}
	}

	results := make(map[Language]*Result, len(unique))
	if len(unique) == 0 {
		return results, nil
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	sem := make(chan struct{}, t.maxConcurrent)

	for _, target := range unique {
		wg.Add(1)
		go func(target Language) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				mu.Lock()
				if firstErr == nil {
					firstErr = ctx.Err()
				}
				mu.Unlock()
				return
			}
			defer func() { <-sem }()

			result, err := t.Translate(ctx, text, target)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			results[target] = result
		}(target)
	}

	wg.Wait()
	return results, firstErr
}
