// Package document tracks editor documents and extracts the text that precedes the cursor.
package document

import (
	"path/filepath"
	"slices"
	"strings"
)

// Language identifiers accepted by the completion host
const (
	JavaScript      = "javascript"
	JavaScriptReact = "javascriptreact"
	TypeScript      = "typescript"
	TypeScriptReact = "typescriptreact"
)

// Languages lists the accepted language identifiers
var Languages = []string{JavaScript, JavaScriptReact, TypeScript, TypeScriptReact}

var extensions = map[string]string{
	".js":  JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".jsx": JavaScriptReact,
	".ts":  TypeScript,
	".mts": TypeScript,
	".cts": TypeScript,
	".tsx": TypeScriptReact,
}

// IsSupported reports whether the language identifier is accepted
func IsSupported(languageID string) bool {
	return slices.Contains(Languages, languageID)
}

// LanguageForPath infers the language identifier from a file extension.
// Returns an empty string for unknown extensions.
func LanguageForPath(path string) string {
	return extensions[strings.ToLower(filepath.Ext(path))]
}
