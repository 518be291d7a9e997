package view

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/NikitaCOEUR/routeconf/internal/completion"
	"github.com/NikitaCOEUR/routeconf/internal/derrors"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Format
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted output formats
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Format writes candidates to w in the given format.
// The text format prints one candidate per line: label, tab, detail.
func Format(w io.Writer, candidates []completion.Candidate, format string) error {
	if candidates == nil {
		candidates = []completion.Candidate{}
	}

	switch strings.ToLower(format) {
	case "", FormatText:
		for _, c := range candidates {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", c.Label, c.Detail); err != nil {
				return err
			}
		}
		return nil

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(candidates)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(candidates); err != nil {
			return err
		}
		return enc.Close()

	default:
		return derrors.NewValidationError("format",
			fmt.Sprintf("unsupported output format %q (supported: %s)", format, strings.Join(Formats, ", ")), nil)
	}
}

// ExecuteTemplate executes tmpl once per candidate, each output on its own line.
// Templates have access to the sprig function map.
func ExecuteTemplate(w io.Writer, tmpl string, candidates []completion.Candidate) error {
	t, err := template.New("candidate").Funcs(sprig.TxtFuncMap()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	for _, c := range candidates {
		if err := t.Execute(w, c); err != nil {
			return fmt.Errorf("failed to execute template for %s: %w", c.Label, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
