package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/NikitaCOEUR/routeconf/internal/completion"
	"github.com/NikitaCOEUR/routeconf/internal/document"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// Validate validates a config file: JSON Schema first, then the checks
// the schema cannot express.
func Validate(path string) (*ValidationResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	result, err := ValidateWithSchema(path, content)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return result, nil
	}

	cfg, err := Load(path)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "syntax",
			Message: fmt.Sprintf("Failed to load config: %v", err),
		})
		return result, nil
	}

	for _, verr := range Check(cfg) {
		result.Valid = false
		result.Errors = append(result.Errors, verr)
	}

	return result, nil
}

// Check reports semantic problems in a loaded configuration
func Check(cfg *Config) []ValidationError {
	var errs []ValidationError

	for i, lang := range cfg.Languages {
		if !document.IsSupported(lang) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("languages.%d", i),
				Message: fmt.Sprintf("Unsupported language %q (supported: %v)", lang, document.Languages),
			})
		}
	}

	identifiers := completion.Identifiers()
	for i, name := range cfg.Disabled {
		if !slices.Contains(identifiers, name) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("disabled.%d", i),
				Message: fmt.Sprintf("Unknown declaration %q (known: %v)", name, identifiers),
			})
		}
	}

	if len(cfg.Languages) == 0 {
		errs = append(errs, ValidationError{
			Field:   "languages",
			Message: "No languages enabled; completions would never be offered",
		})
	}

	return errs
}
