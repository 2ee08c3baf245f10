package cli

import (
	"context"
	"io"

	"github.com/pipseed/pipseed/internal/command"
	"github.com/pipseed/pipseed/internal/shell"
	"github.com/pipseed/pipseed/pkg/version"
)

// ShellParams contains parameters for Shell
type ShellParams struct {
	Env      *Env
	In       io.Reader
	Out      io.Writer
	Generate shell.GenerateFunc
}

// Shell runs the interactive prompt and returns the exit code to terminate with.
func Shell(ctx context.Context, params ShellParams) (int, error) {
	cfg := params.Env.Config

	banner, err := cfg.RenderBanner(version.Version)
	if err != nil {
		return 1, err
	}

	sh := shell.New(shell.Options{
		Registry: command.Default(),
		Banner:   banner,
		Prompt:   cfg.Prompt,
		Farewell: cfg.Farewell,
		In:       params.In,
		Out:      params.Out,
		Logger:   params.Env.Logger,
		Generate: params.Generate,
	})

	params.Env.Logger.Debug().Msg("Starting shell")
	return sh.Run(ctx)
}
