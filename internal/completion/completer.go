// Package completion resolves value completions for Next.js route segment
// config exports from the text that precedes the cursor.
package completion

import "strings"

// DefaultMarker prefixes the detail of the entry that matches the framework default.
const DefaultMarker = "(default) "

// Candidate represents a single selectable value for a declaration
type Candidate struct {
	Label      string `json:"label" yaml:"label"`            // Literal value shown to the user
	Detail     string `json:"detail" yaml:"detail"`          // Explanation of what the value does
	InsertText string `json:"insertText" yaml:"insert_text"` // Text written at the cursor on selection
	Deprecated bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

// IsDefault reports whether the candidate is the framework default for its declaration
func (c Candidate) IsDefault() bool {
	return strings.HasPrefix(c.Detail, DefaultMarker)
}

// Result represents a successful resolution
type Result struct {
	Kind       Kind
	Identifier string // Identifier as it appeared in the declaration
	Candidates []Candidate
}
