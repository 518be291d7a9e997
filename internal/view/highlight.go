package view

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
)

const (
	highlightLexer     = "typescript"
	highlightFormatter = "terminal256"
	highlightStyle     = "monokai"
)

// Highlight writes source to w, syntax highlighted when color is set
func Highlight(w io.Writer, source string, color bool) error {
	if !color {
		_, err := io.WriteString(w, source)
		return err
	}

	if err := quick.Highlight(w, source, highlightLexer, highlightFormatter, highlightStyle); err != nil {
		return fmt.Errorf("failed to highlight source: %w", err)
	}
	return nil
}
