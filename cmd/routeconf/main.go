// Package main is the entry point for the routeconf CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	rcli "github.com/NikitaCOEUR/routeconf/internal/cli"
	"github.com/NikitaCOEUR/routeconf/internal/config"
	"github.com/NikitaCOEUR/routeconf/pkg/version"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:                  "routeconf",
		Usage:                 "Value completions for Next.js route segment config exports",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error); overrides log_level from the config",
				Sources: cli.EnvVars("ROUTECONF_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file (defaults to $XDG_CONFIG_HOME/routeconf/config.yml)",
				Sources: cli.EnvVars(config.EnvConfigPath),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "complete",
				Usage:     "Print the candidates for the declaration before the cursor",
				ArgsUsage: "[line-prefix]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Source file to read the cursor line from",
					},
					&cli.IntFlag{
						Name:    "line",
						Aliases: []string{"l"},
						Value:   1,
						Usage:   "Cursor line in --file (1-based)",
					},
					&cli.IntFlag{
						Name:  "column",
						Usage: "Cursor column in --file (1-based, 0 for end of line)",
					},
					&cli.StringFlag{
						Name:    "prefix",
						Aliases: []string{"p"},
						Usage:   "Only show candidates whose label starts with this",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: text, json or yaml (defaults to format from the config)",
					},
					&cli.StringFlag{
						Name:    "template",
						Aliases: []string{"t"},
						Usage:   "Go template executed per candidate (sprig functions available)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.String("file") == "" && cmd.Args().Len() == 0 {
						return fmt.Errorf("either a line prefix argument or --file is required")
					}

					return rcli.Complete(rcli.CompleteParams{
						ConfigPath: cmd.String("config"),
						LogLevel:   cmd.String("log-level"),
						LinePrefix: cmd.Args().Get(0),
						File:       cmd.String("file"),
						Line:       int(cmd.Int("line")),
						Column:     int(cmd.Int("column")),
						Filter:     cmd.String("prefix"),
						Format:     cmd.String("format"),
						Template:   cmd.String("template"),
						Out:        cmd.Root().Writer,
					})
				},
			},
			{
				Name:  "list",
				Usage: "List every declaration with its candidates",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return rcli.List(rcli.ListParams{
						ConfigPath: cmd.String("config"),
						LogLevel:   cmd.String("log-level"),
						Out:        cmd.Root().Writer,
					})
				},
			},
			{
				Name:      "show",
				Usage:     "Show one declaration and the source line each candidate produces",
				ArgsUsage: "<identifier>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "no-color",
						Usage: "Disable syntax highlighting (off when stdout is not a terminal)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return fmt.Errorf("expected exactly one declaration identifier")
					}

					return rcli.Show(rcli.ShowParams{
						ConfigPath: cmd.String("config"),
						LogLevel:   cmd.String("log-level"),
						Identifier: cmd.Args().Get(0),
						Color:      !cmd.Bool("no-color") && stdoutIsTerminal(cmd),
						Out:        cmd.Root().Writer,
					})
				},
			},
			{
				Name:  "serve",
				Usage: "Run the language server on stdin/stdout",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return rcli.Serve(ctx, rcli.ServeParams{
						ConfigPath: cmd.String("config"),
						LogLevel:   cmd.String("log-level"),
						Version:    version.Version,
					})
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a routeconf configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := cmd.String("config")
					if cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return rcli.Validate(rcli.ValidateParams{
						ConfigPath: configPath,
						Out:        cmd.Root().Writer,
					})
				},
			},
			{
				Name:      "schema",
				Usage:     "Display or export the JSON Schema for routeconf configuration files",
				ArgsUsage: "[output-file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					outputPath := cmd.String("output")
					if outputPath == "" && cmd.Args().Len() > 0 {
						outputPath = cmd.Args().Get(0)
					}
					return rcli.Schema(outputPath, cmd.Root().Writer)
				},
			},
			{
				Name:  "init",
				Usage: "Create a sample config file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing config file",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return rcli.Init(rcli.InitParams{
						ConfigPath: cmd.String("config"),
						Force:      cmd.Bool("force"),
						Out:        cmd.Root().Writer,
					})
				},
			},
			{
				Name:  "version",
				Usage: "Print version and build information",
				Action: func(_ context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintf(cmd.Root().Writer, "routeconf %s\n", version.String())
					return err
				},
			},
		},
	}
}

// stdoutIsTerminal reports whether the command writes to an interactive terminal
func stdoutIsTerminal(cmd *cli.Command) bool {
	f, ok := cmd.Root().Writer.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
