package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pipseed/pipseed/internal/config"
	"github.com/pipseed/pipseed/internal/derrors"
	"github.com/pipseed/pipseed/internal/format"
	"github.com/pipseed/pipseed/internal/seed"
	"github.com/pipseed/pipseed/internal/timing"
	"github.com/pipseed/pipseed/internal/trace"
)

// GenerateParams contains parameters for Generate
type GenerateParams struct {
	Env *Env

	Type   string
	Count  int
	Format string
	Pretty bool
	Table  string
	Output string // path template, empty writes to Out
	Seed   uint64

	// ReferenceTime pins "now" for date fields; zero means the current time.
	ReferenceTime time.Time

	Out    io.Writer
	ErrOut io.Writer
}

// OutputData is what the output path template can refer to.
type OutputData struct {
	Type   string
	Format string
	Count  int
	Table  string
}

// GenerateDefaults returns generate parameters filled from the configuration.
func GenerateDefaults(env *Env) GenerateParams {
	g := env.Config.Generate
	return GenerateParams{
		Env:    env,
		Count:  g.Count,
		Format: g.Format,
		Pretty: g.Pretty,
		Table:  g.Table,
		Output: g.Output,
		Seed:   g.Seed,
	}
}

// Generate produces fake records and writes them to Out or to the output file.
func Generate(ctx context.Context, params GenerateParams) error {
	ctx, end := trace.Task(ctx, "generate")
	defer end()

	log := params.Env.Logger
	timer := timing.NewTimer()

	dataType, err := seed.ParseType(params.Type)
	if err != nil {
		return err
	}
	outFormat, err := format.Parse(params.Format)
	if err != nil {
		return err
	}
	if outFormat == format.SQL {
		if err := format.ValidateTable(params.Table); err != nil {
			return err
		}
	}

	var opts []seed.Option
	if !params.ReferenceTime.IsZero() {
		opts = append(opts, seed.WithReferenceTime(params.ReferenceTime))
	}
	gen := seed.NewGenerator(params.Seed, opts...)

	endRegion := trace.Region(ctx, "generate.records")
	records, err := gen.Generate(dataType, params.Count)
	endRegion()
	if err != nil {
		return err
	}
	timer.Mark("generate")

	formatOpts := format.Options{Pretty: params.Pretty, Table: params.Table}
	target := ""
	if params.Output == "" {
		if err := format.Write(params.Out, outFormat, records, formatOpts); err != nil {
			return err
		}
	} else {
		target, err = writeOutputFile(params, dataType, outFormat, records, formatOpts)
		if err != nil {
			return err
		}
		fmt.Fprintf(params.ErrOut, "Data written to %s\n", target)
	}
	timer.Mark("write")

	log.Debug().
		Str("type", string(dataType)).
		Str("format", string(outFormat)).
		Int("count", len(records)).
		Str("seed", strconv.FormatUint(gen.Seed(), 10)).
		Str("output", target).
		Dur("elapsed", timer.Elapsed()).
		Msg("Generated records")
	if log.Enabled("debug") {
		log.Debug().Msg(timer.Summary())
	}

	return nil
}

func writeOutputFile(params GenerateParams, t seed.Type, f format.Format, records []seed.Record, opts format.Options) (string, error) {
	path, err := config.ExpandTemplate("output", params.Output, OutputData{
		Type:   string(t),
		Format: string(f),
		Count:  params.Count,
		Table:  params.Table,
	})
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", derrors.NewValidationError("output", "output path template rendered an empty path", nil)
	}
	if !filepath.IsAbs(path) && params.Env.Dir != "" {
		path = filepath.Join(params.Env.Dir, path)
	}

	out, err := format.Render(f, records, opts)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", derrors.NewOutputError(path, "failed to create output directory", err)
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return "", derrors.NewOutputError(path, "failed to write output file", err)
	}
	return path, nil
}
