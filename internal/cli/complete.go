package cli

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/NikitaCOEUR/routeconf/internal/completion"
	"github.com/NikitaCOEUR/routeconf/internal/derrors"
	"github.com/NikitaCOEUR/routeconf/internal/document"
	"github.com/NikitaCOEUR/routeconf/internal/timing"
	"github.com/NikitaCOEUR/routeconf/internal/view"
)

// CompleteParams contains parameters for the Complete command
type CompleteParams struct {
	ConfigPath string
	LogLevel   string

	// LinePrefix is resolved as-is unless File is set
	LinePrefix string

	// File, Line and Column locate the cursor in a source file.
	// Line and Column are 1-based; a Column of 0 places the cursor at the end of the line.
	File   string
	Line   int
	Column int

	Filter   string // Keep candidates whose label starts with this
	Format   string // text, json or yaml; the configured format when empty
	Template string // Go template executed per candidate, overrides Format

	Out    io.Writer
	LogOut io.Writer
}

// Complete prints the candidates for the declaration before the cursor.
// Nothing is printed when no declaration matches.
func Complete(params CompleteParams) error {
	env, err := loadEnvironment(params.ConfigPath, params.LogLevel, params.LogOut)
	if err != nil {
		return err
	}
	log := env.log
	timer := timing.NewTimer()

	prefix := params.LinePrefix
	if params.File != "" {
		var enabled bool
		prefix, enabled, err = prefixFromFile(env, params)
		if err != nil {
			return err
		}
		if !enabled {
			return nil
		}
	}
	timer.Mark("prefix")

	result, ok := completion.ResolveResult(prefix)
	timer.Mark("resolve")
	if !ok {
		log.Debug().Str("prefix", prefix).Msg("No declaration before cursor")
		return nil
	}

	if !env.config.DeclarationEnabled(result.Identifier) {
		log.Info().Str("declaration", result.Identifier).Msg("Declaration disabled in configuration")
		return nil
	}

	candidates := completion.Filter(result.Candidates, params.Filter)
	log.Debug().
		Str("declaration", result.Identifier).
		Int("candidates", len(candidates)).
		Str("timing", timer.Summary()).
		Msg("Resolved")

	out := output(params.Out)
	if params.Template != "" {
		return view.ExecuteTemplate(out, params.Template, candidates)
	}

	format := params.Format
	if format == "" {
		format = env.config.Format
	}
	return view.Format(out, candidates, format)
}

// prefixFromFile extracts the line prefix at the cursor in params.File.
// enabled is false when the file's language is switched off in the config.
func prefixFromFile(env *environment, params CompleteParams) (prefix string, enabled bool, err error) {
	lang := document.LanguageForPath(params.File)
	if lang == "" {
		return "", false, derrors.NewValidationError("file", fmt.Sprintf("unsupported file type: %s", params.File), nil)
	}
	if !env.config.LanguageEnabled(lang) {
		env.log.Info().Str("file", params.File).Str("language", lang).Msg("Language disabled in configuration")
		return "", false, nil
	}

	if params.Line < 1 {
		return "", false, derrors.NewValidationError("line", fmt.Sprintf("line must be 1 or greater, got %d", params.Line), nil)
	}
	if params.Column < 0 {
		return "", false, derrors.NewValidationError("column", fmt.Sprintf("column must not be negative, got %d", params.Column), nil)
	}

	content, err := os.ReadFile(params.File)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", params.File, err)
	}

	character := math.MaxInt
	if params.Column > 0 {
		character = params.Column - 1
	}

	prefix, ok := document.LinePrefix(string(content), params.Line-1, character)
	if !ok {
		return "", false, derrors.NewValidationError("line", fmt.Sprintf("%s has no line %d", params.File, params.Line), nil)
	}
	return prefix, true, nil
}
