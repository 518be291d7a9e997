package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/routeconf/internal/config"
)

// Schema displays or exports the JSON Schema for routeconf configuration files
func Schema(outputPath string, out io.Writer) error {
	out = output(out)

	schemaJSON, err := config.GetSchemaJSON()
	if err != nil {
		return err
	}

	// If output path is provided, write to file
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(schemaJSON+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write schema to %s: %w", outputPath, err)
		}
		_, _ = fmt.Fprintf(out, "JSON Schema written to: %s\n", outputPath)
		return nil
	}

	// Otherwise, print to stdout
	_, err = fmt.Fprintln(out, schemaJSON)
	return err
}
