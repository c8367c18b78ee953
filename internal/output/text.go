package output

import (
	"fmt"
	"strings"
)

func init() {
	RegisterFormatter("text", &TextFormatter{})
}

// TextDocument is a document with a human-readable rendering.
type TextDocument interface {
	RenderText(p Palette) string
}

// TextFormatter formats documents for a terminal.
type TextFormatter struct{}

// Format renders doc, which must implement TextDocument.
func (f *TextFormatter) Format(doc any, cfg Config) ([]byte, error) {
	td, ok := doc.(TextDocument)
	if !ok {
		return nil, fmt.Errorf("text output is not supported for %T", doc)
	}
	return []byte(strings.TrimRight(td.RenderText(cfg.Palette()), "\n")), nil
}
