// Package clipboard provides access to the system clipboard.
package clipboard

import (
	"strings"

	"github.com/atotto/clipboard"

	"github.com/ZaguanLabs/clipling"
)

// Reader reads textual data from the system clipboard.
type Reader interface {
	Read() (string, error)
}

// Writer copies textual data to the system clipboard.
type Writer interface {
	Write(text string) error
}

// Service implements Reader and Writer using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a clipboard service implementation.
func NewService() *Service {
	return &Service{}
}

// Read returns the clipboard's text content. An unreadable or empty
// clipboard yields a ClipboardError.
func (s *Service) Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", &clipling.ClipboardError{Message: "reading system clipboard", Cause: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &clipling.ClipboardError{Message: "clipboard does not contain text"}
	}
	return text, nil
}

// Write copies text to the system clipboard.
func (s *Service) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return &clipling.ClipboardError{Message: "writing system clipboard", Cause: err}
	}
	return nil
}

var (
	_ Reader = (*Service)(nil)
	_ Writer = (*Service)(nil)
)
