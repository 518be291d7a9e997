package cli

import (
	"fmt"
	"io"

	"github.com/NikitaCOEUR/routeconf/internal/view"
)

// ListParams contains parameters for the List command
type ListParams struct {
	ConfigPath string
	LogLevel   string
	Out        io.Writer
	LogOut     io.Writer
}

// List displays every declaration and its candidates
func List(params ListParams) error {
	env, err := loadEnvironment(params.ConfigPath, params.LogLevel, params.LogOut)
	if err != nil {
		return err
	}

	sections := view.CollectAll(env.config.Disabled)
	_, err = fmt.Fprint(output(params.Out), view.RenderList(sections))
	return err
}
