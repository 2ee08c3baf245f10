// Package main is the entry point for the PipSeed CLI application.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	seedcli "github.com/pipseed/pipseed/internal/cli"
	"github.com/pipseed/pipseed/internal/trace"
	"github.com/pipseed/pipseed/pkg/version"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run executes the application and returns the process exit code.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	defer trace.Init()()

	if err := newApp(app{in: in, out: out, errOut: errOut}).Run(ctx, args); err != nil {
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return 0
}

// app carries the streams and working directory commands run against.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	dir    string // current directory when empty
}

func versionString() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version.Version, version.GitCommit, version.BuildTime)
}

func newApp(a app) *cli.Command {
	return &cli.Command{
		Name:      "pipseed",
		Usage:     "Generate fake data to seed your database",
		Version:   versionString(),
		Reader:    a.in,
		Writer:    a.out,
		ErrWriter: a.errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error), overrides the config",
				Sources: cli.EnvVars("PIPSEED_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file to use instead of the discovered ones",
				Sources: cli.EnvVars("PIPSEED_CONFIG"),
			},
		},
		Action: a.shellAction,
		Commands: []*cli.Command{
			{
				Name:   "shell",
				Usage:  "Start the interactive prompt (default)",
				Action: a.shellAction,
			},
			a.generateCommand(nil, a.out, a.errOut),
			{
				Name:  "types",
				Usage: "List the data types that can be generated",
				Action: func(_ context.Context, _ *cli.Command) error {
					return seedcli.Types(a.out)
				},
			},
			{
				Name:  "status",
				Usage: "Show the configuration layers and effective settings",
				Action: func(_ context.Context, cmd *cli.Command) error {
					env, err := a.bootstrap(cmd)
					if err != nil {
						return err
					}
					return seedcli.Status(seedcli.StatusParams{
						Env:        env,
						ConfigPath: cmd.String("config"),
						Out:        a.out,
					})
				},
			},
			{
				Name:  "init",
				Usage: "Create a sample config file in current folder or global config",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "global",
						Usage: "Create the global config file instead",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return seedcli.Init(seedcli.InitParams{
						Dir:    a.dir,
						Global: cmd.Bool("global"),
						Out:    a.out,
					})
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a config file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return seedcli.Validate(seedcli.ValidateParams{
						Path: cmd.Args().First(),
						Dir:  a.dir,
						Out:  a.out,
					})
				},
			},
			{
				Name:  "schema",
				Usage: "Print or export the JSON Schema of config files",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the schema to this file",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return seedcli.Schema(cmd.String("output"), a.out)
				},
			},
		},
	}
}

func (a app) bootstrap(cmd *cli.Command) (*seedcli.Env, error) {
	return seedcli.Bootstrap(seedcli.BootstrapParams{
		Dir:        a.dir,
		ConfigPath: cmd.String("config"),
		LogLevel:   cmd.String("log-level"),
		LogOutput:  a.errOut,
	})
}

func (a app) shellAction(ctx context.Context, cmd *cli.Command) error {
	env, err := a.bootstrap(cmd)
	if err != nil {
		return err
	}

	code, err := seedcli.Shell(ctx, seedcli.ShellParams{
		Env:      env,
		In:       a.in,
		Out:      a.out,
		Generate: a.shellGenerate(env),
	})
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("shell exited with code %d", code)
	}
	return nil
}
