package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/NikitaCOEUR/routeconf/internal/completion"
	"github.com/NikitaCOEUR/routeconf/internal/derrors"
	"github.com/NikitaCOEUR/routeconf/internal/view"
)

// ShowParams contains parameters for the Show command
type ShowParams struct {
	ConfigPath string
	LogLevel   string
	Identifier string
	Color      bool // Syntax highlight the declaration lines
	Out        io.Writer
	LogOut     io.Writer
}

// Show displays one declaration with the source line each candidate produces
func Show(params ShowParams) error {
	env, err := loadEnvironment(params.ConfigPath, params.LogLevel, params.LogOut)
	if err != nil {
		return err
	}

	k, ok := completion.KindByIdentifier(params.Identifier)
	if !ok {
		return derrors.NewNotFoundError(params.Identifier,
			fmt.Sprintf("unknown declaration %q (known: %s)", params.Identifier, strings.Join(completion.Identifiers(), ", ")))
	}

	section := view.Collect(k, env.config.Disabled)

	declarations := make([]string, len(section.Candidates))
	for i, c := range section.Candidates {
		var b strings.Builder
		if err := view.Highlight(&b, view.Declaration(section.Identifier, c), params.Color); err != nil {
			return err
		}
		declarations[i] = strings.TrimRight(b.String(), "\n")
	}

	_, err = fmt.Fprint(output(params.Out), view.RenderSection(section, declarations))
	return err
}
