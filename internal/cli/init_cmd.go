package cli

import (
	"fmt"
	"io"

	"github.com/NikitaCOEUR/routeconf/internal/config"
	"github.com/NikitaCOEUR/routeconf/internal/derrors"
)

// InitParams contains parameters for the Init command
type InitParams struct {
	ConfigPath string // Default config location when empty
	Force      bool   // Overwrite an existing file
	Out        io.Writer
}

// Init writes the sample configuration file
func Init(params InitParams) error {
	configPath := params.ConfigPath
	if configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return derrors.NewConfigurationError("", "failed to get config path", err)
		}
		configPath = path
	}

	if err := config.WriteSample(configPath, params.Force); err != nil {
		return err
	}

	out := output(params.Out)
	_, _ = fmt.Fprintf(out, "Created config: %s\n", configPath)
	_, _ = fmt.Fprintln(out, "\nNext steps:")
	_, _ = fmt.Fprintln(out, "  1. Edit the config file to suit your needs")
	_, _ = fmt.Fprintln(out, "  2. Run 'routeconf validate' to check it")
	_, _ = fmt.Fprintln(out, "  3. Point your editor at 'routeconf serve'")

	return nil
}
