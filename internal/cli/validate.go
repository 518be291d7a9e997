package cli

import (
	"fmt"
	"io"

	"github.com/NikitaCOEUR/routeconf/internal/config"
	"github.com/fatih/color"
)

// ValidateParams contains parameters for the Validate command
type ValidateParams struct {
	// ConfigPath is the file to validate; the active config file when empty
	ConfigPath string
	Out        io.Writer
}

// Validate validates a routeconf configuration file
func Validate(params ValidateParams) error {
	out := output(params.Out)

	configPath := config.Find(params.ConfigPath)
	if configPath == "" {
		return fmt.Errorf("no config file found (run 'routeconf init' to create one)")
	}

	_, _ = fmt.Fprintf(out, "Validating: %s\n\n", configPath)

	result, err := config.Validate(configPath)
	if err != nil {
		return err
	}

	if result.Valid {
		_, _ = fmt.Fprintln(out, color.GreenString("✅ Configuration is valid!"))
		return nil
	}

	// Display errors
	_, _ = fmt.Fprintln(out, color.RedString("❌ Configuration has errors:"))
	for i, validationErr := range result.Errors {
		_, _ = fmt.Fprintf(out, "%d. [%s] %s\n", i+1, color.YellowString(validationErr.Field), validationErr.Message)
	}

	_, _ = fmt.Fprintf(out, "\nFound %d error(s)\n", len(result.Errors))

	// Return non-zero exit code
	return fmt.Errorf("validation failed")
}
