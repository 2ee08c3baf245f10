package cli

import (
	"fmt"
	"io"

	"github.com/pipseed/pipseed/internal/status"
)

// StatusParams contains parameters for Status
type StatusParams struct {
	Env        *Env
	ConfigPath string // explicit config given on the command line
	Out        io.Writer
}

// Status shows the configuration layers and effective settings
func Status(params StatusParams) error {
	data := status.Collect(status.CollectParams{
		Dir:            params.Env.Dir,
		ExplicitConfig: params.ConfigPath,
		Config:         params.Env.Config,
	})

	_, err := fmt.Fprint(params.Out, status.Render(data))
	return err
}
