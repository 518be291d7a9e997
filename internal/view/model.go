// Package view renders completion catalogues and candidate lists for the terminal.
package view

import (
	"slices"

	"github.com/NikitaCOEUR/routeconf/internal/completion"
)

// Section contains everything displayed for one declaration
type Section struct {
	Identifier  string
	ValueType   completion.ValueType
	Description string
	Disabled    bool // Suppressed by the disabled config key
	Candidates  []completion.Candidate
}

// Collect builds the section of a single kind
func Collect(k completion.Kind, disabled []string) Section {
	return Section{
		Identifier:  k.Identifier(),
		ValueType:   k.ValueType(),
		Description: k.Description(),
		Disabled:    slices.Contains(disabled, k.Identifier()),
		Candidates:  completion.Candidates(k),
	}
}

// CollectAll builds the sections of every kind in priority order
func CollectAll(disabled []string) []Section {
	kinds := completion.Kinds()
	sections := make([]Section, 0, len(kinds))
	for _, k := range kinds {
		sections = append(sections, Collect(k, disabled))
	}
	return sections
}

// Declaration returns the source line a candidate produces once inserted
func Declaration(identifier string, c completion.Candidate) string {
	return "export const " + identifier + " = " + c.InsertText
}
