package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	seedcli "github.com/pipseed/pipseed/internal/cli"
	"github.com/pipseed/pipseed/internal/derrors"
	"github.com/pipseed/pipseed/internal/seed"
	"github.com/pipseed/pipseed/internal/shell"
)

// generateCommand builds the generate command writing data to out and
// notices to errOut. With a nil env the environment is bootstrapped from the
// root flags when the command runs.
func (a app) generateCommand(env *seedcli.Env, out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"gen"},
		Usage:     "Generate fake records of a data type",
		ArgsUsage: "<type>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "Number of records",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (json, csv, sql, yaml)",
			},
			&cli.BoolFlag{
				Name:    "pretty",
				Aliases: []string{"p"},
				Usage:   "Indent JSON output",
			},
			&cli.StringFlag{
				Name:    "table",
				Aliases: []string{"t"},
				Usage:   "Table name for SQL output",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path template (.Type, .Format, .Count, .Table)",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "Random seed for reproducible data (0 picks one)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e := env
			if e == nil {
				var err error
				if e, err = a.bootstrap(cmd); err != nil {
					return err
				}
			}
			return runGenerate(ctx, e, cmd, out, errOut)
		},
	}
}

// runGenerate applies the flags the user set over the configured defaults.
func runGenerate(ctx context.Context, env *seedcli.Env, cmd *cli.Command, out, errOut io.Writer) error {
	if cmd.Args().Len() != 1 {
		names := make([]string, 0, len(seed.Types()))
		for _, t := range seed.Types() {
			names = append(names, string(t))
		}
		return derrors.NewValidationError("type",
			fmt.Sprintf("expected exactly one data type, got %d (available types: %s)",
				cmd.Args().Len(), strings.Join(names, ", ")), nil)
	}

	params := seedcli.GenerateDefaults(env)
	params.Type = cmd.Args().First()
	params.Out = out
	params.ErrOut = errOut

	if cmd.IsSet("count") {
		params.Count = cmd.Int("count")
	}
	if cmd.IsSet("format") {
		params.Format = cmd.String("format")
	}
	if cmd.IsSet("pretty") {
		params.Pretty = cmd.Bool("pretty")
	}
	if cmd.IsSet("table") {
		params.Table = cmd.String("table")
	}
	if cmd.IsSet("output") {
		params.Output = cmd.String("output")
	}
	if cmd.IsSet("seed") {
		params.Seed = cmd.Uint64("seed")
	}

	return seedcli.Generate(ctx, params)
}

// shellGenerate runs "-g <args>" from the prompt through the same flag
// parsing as the generate command, writing to the shell output.
func (a app) shellGenerate(env *seedcli.Env) shell.GenerateFunc {
	return func(ctx context.Context, args []string, out io.Writer) error {
		cmd := a.generateCommand(env, out, out)
		cmd.Writer = out
		cmd.ErrWriter = out
		// The shell prints the returned error itself.
		cmd.OnUsageError = func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return err
		}
		return cmd.Run(ctx, append([]string{cmd.Name}, flagsFirst(args)...))
	}
}

// flagsFirst moves a leading data type behind the flags, so "person -n 5"
// parses the same as "-n 5 person".
func flagsFirst(args []string) []string {
	if len(args) < 2 || strings.HasPrefix(args[0], "-") {
		return args
	}
	reordered := make([]string, 0, len(args))
	reordered = append(reordered, args[1:]...)
	return append(reordered, args[0])
}
