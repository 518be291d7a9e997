package cli

import (
	"context"
	"io"
	"os"

	"github.com/NikitaCOEUR/routeconf/internal/lsp"
	"github.com/NikitaCOEUR/routeconf/internal/trace"
)

// ServeParams contains parameters for the Serve command
type ServeParams struct {
	ConfigPath string
	LogLevel   string
	Version    string
	In         io.Reader // stdin when nil
	Out        io.Writer // stdout when nil
	LogOut     io.Writer // log_file, else stderr, when nil
}

// Serve runs the language server until the editor exits
func Serve(ctx context.Context, params ServeParams) error {
	defer trace.Init()()

	cfg, path, err := loadConfig(params.ConfigPath)
	if err != nil {
		return err
	}

	logOut := params.LogOut
	if logOut == nil {
		logOut = os.Stderr
		if cfg.LogFile != "" {
			f, err := openLogFile(cfg.LogFile)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			logOut = f
		}
	}

	in := params.In
	if in == nil {
		in = os.Stdin
	}

	server := lsp.NewServer(in, output(params.Out), lsp.Options{
		Config:     cfg,
		ConfigPath: path,
		Logger:     newLogger(cfg, path, params.LogLevel, logOut),
		Version:    params.Version,
	})
	return server.Serve(ctx)
}
