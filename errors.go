package clipling

import "fmt"

// TranslationError is the base error type for translation failures.
type TranslationError struct {
	Message string
	Cause   error
}

func (e *TranslationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// ProviderError indicates an AI provider failure (API error, rate limit, etc.).
type ProviderError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// ClipboardError indicates a system clipboard failure or an empty clipboard.
type ClipboardError struct {
	Message string
	Cause   error
}

func (e *ClipboardError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("clipboard error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("clipboard error: %s", e.Message)
}

func (e *ClipboardError) Unwrap() error {
	return e.Cause
}

// InvalidArgumentError indicates a caller passed a value outside the valid
// domain, such as a language code that is not supported.
type InvalidArgumentError struct {
	Param string
	Value string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %q", e.Param, e.Value)
}
