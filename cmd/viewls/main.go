// Package main is the entry point for the viewls CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"
	vcli "github.com/viewls/viewls/internal/cli"
	"github.com/viewls/viewls/internal/trace"
	"github.com/viewls/viewls/pkg/version"
)

// registryOptions collects the shared registry flags for a command.
func registryOptions(cmd *cli.Command) vcli.RegistryOptions {
	return vcli.RegistryOptions{
		ConfigPath: cmd.String("config"),
		Registries: cmd.StringSlice("registry"),
		NoBuiltin:  cmd.Bool("no-builtin"),
		Namespace:  cmd.String("namespace"),
	}
}

func main() {
	stopTrace := trace.Init()
	defer stopTrace()

	app := &cli.Command{
		Name:                  "viewls",
		Usage:                 "Context-aware completion for view markup documents",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error); defaults to the configured level",
				Sources: cli.EnvVars("VIEWLS_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Config file path (discovered upward from the working directory if not specified)",
				Sources: cli.EnvVars("VIEWLS_CONFIG"),
			},
			&cli.StringSliceFlag{
				Name:    "registry",
				Aliases: []string{"r"},
				Usage:   "Extra registry file to merge (repeatable)",
				Sources: cli.EnvVars("VIEWLS_SDK"),
			},
			&cli.BoolFlag{
				Name:  "no-builtin",
				Usage: "Skip the embedded component registry",
			},
			&cli.StringFlag{
				Name:  "namespace",
				Usage: "Override the attribute namespace",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "complete",
				Usage:     "Print completion entries for a cursor position in a document",
				ArgsUsage: "<file> <offset>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: text or json",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() < 2 {
						return fmt.Errorf("usage: viewls complete <file> <offset>")
					}
					offset, err := strconv.Atoi(cmd.Args().Get(1))
					if err != nil {
						return fmt.Errorf("invalid offset %q: %w", cmd.Args().Get(1), err)
					}
					return vcli.Complete(vcli.CompleteParams{
						LogLevel: cmd.String("log-level"),
						Registry: registryOptions(cmd),
						Path:     cmd.Args().Get(0),
						Offset:   offset,
						Format:   cmd.String("format"),
					})
				},
			},
			{
				Name:  "serve",
				Usage: "Run the language server on stdio",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "Log protocol traffic",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					verbosity := 1
					if cmd.Bool("debug") {
						verbosity = 2
					}
					return vcli.Serve(vcli.ServeParams{
						LogLevel:  cmd.String("log-level"),
						Registry:  registryOptions(cmd),
						Verbosity: verbosity,
					})
				},
			},
			{
				Name:  "registry",
				Usage: "Inspect and validate component registries",
				Commands: []*cli.Command{
					{
						Name:      "validate",
						Usage:     "Validate registry files",
						ArgsUsage: "<registry-file>...",
						Action: func(_ context.Context, cmd *cli.Command) error {
							if cmd.Args().Len() == 0 {
								return fmt.Errorf("usage: viewls registry validate <registry-file>...")
							}
							var firstErr error
							for _, path := range cmd.Args().Slice() {
								if err := vcli.Validate(path); err != nil && firstErr == nil {
									firstErr = err
								}
							}
							return firstErr
						},
					},
					{
						Name:  "info",
						Usage: "Show the effective configuration and merged registry",
						Action: func(_ context.Context, cmd *cli.Command) error {
							return vcli.Info(vcli.InfoParams{
								LogLevel: cmd.String("log-level"),
								Registry: registryOptions(cmd),
							})
						},
					},
					{
						Name:  "docs",
						Usage: "Render a markdown reference of registered components",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:    "output",
								Aliases: []string{"o"},
								Usage:   "Output file path (prints to stdout if not specified)",
							},
						},
						Action: func(_ context.Context, cmd *cli.Command) error {
							return vcli.Docs(vcli.DocsParams{
								LogLevel: cmd.String("log-level"),
								Registry: registryOptions(cmd),
								Output:   cmd.String("output"),
							})
						},
					},
				},
			},
			{
				Name:      "schema",
				Usage:     "Display or export the JSON Schema for registry files",
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
					return vcli.Schema(outputPath)
				},
			},
			{
				Name:  "hook",
				Usage: "Print editor wiring for the language server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "editor",
						Value:   "auto",
						Usage:   "Editor: nvim, helix, kate, or auto",
						Sources: cli.EnvVars("VIEWLS_EDITOR"),
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					editor := vcli.DetectEditor(cmd.String("editor"))
					snippet := vcli.GenerateEditorConfig(editor)

					fmt.Println("# Add this to your editor configuration:")
					fmt.Printf("# For %s: add to %s\n\n", editor, vcli.EditorConfigFile(editor))
					fmt.Println(snippet)

					return nil
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
