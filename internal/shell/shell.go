// Package shell runs the interactive PipSeed prompt.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pipseed/pipseed/internal/command"
	"github.com/pipseed/pipseed/internal/input"
	"github.com/pipseed/pipseed/internal/logger"
	"github.com/pipseed/pipseed/internal/trace"
)

// Signal tells the read loop what to do after a command.
type Signal int

const (
	// Continue reads the next line.
	Continue Signal = iota
	// Exit ends the session with exit code 0.
	Exit
)

// GenerateFunc runs the generate command with the tokens typed after -g,
// writing data to out.
type GenerateFunc func(ctx context.Context, args []string, out io.Writer) error

// Options configures a Shell. Zero values fall back to stdin, stdout, the
// default registry and a silent logger.
type Options struct {
	Registry *command.Registry
	Banner   string
	Prompt   string
	Farewell string

	In     io.Reader
	Out    io.Writer
	Logger *logger.Logger

	// Generate handles "-g <args>". Without it, -g behaves like an unknown command.
	Generate GenerateFunc
}

// Shell is the read-eval-print loop.
type Shell struct {
	registry *command.Registry
	banner   string
	prompt   string
	farewell string
	hint     string

	reader   *bufio.Reader
	out      io.Writer
	view     *view
	log      *logger.Logger
	generate GenerateFunc
}

// New creates a shell.
func New(opts Options) *Shell {
	if opts.Registry == nil {
		opts.Registry = command.Default()
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	return &Shell{
		registry: opts.Registry,
		banner:   opts.Banner,
		prompt:   opts.Prompt,
		farewell: opts.Farewell,
		hint:     hintFor(opts.Registry),
		reader:   bufio.NewReader(opts.In),
		out:      opts.Out,
		view:     newView(opts.Out),
		log:      opts.Logger,
		generate: opts.Generate,
	}
}

// hintFor points the user at whatever the registry calls help.
func hintFor(r *command.Registry) string {
	for _, d := range r.All() {
		if d.Kind == command.Help {
			return fmt.Sprintf("You can use '%s' or '%s' to see the manual", d.Short, d.Long)
		}
	}
	return "Unknown command"
}

// Run prints the banner and reads commands until quit or end of input.
// It returns the exit code the process should terminate with.
func (s *Shell) Run(ctx context.Context) (int, error) {
	s.view.banner(s.banner)

	for {
		if err := ctx.Err(); err != nil {
			return 1, err
		}

		s.view.prompt(s.prompt)
		line, err := s.readLine()
		atEOF := errors.Is(err, io.EOF)
		if err != nil && !atEOF {
			return 1, fmt.Errorf("failed to read input: %w", err)
		}
		s.view.blank()

		if atEOF && line == "" {
			s.log.Debug().Msg("End of input, leaving shell")
			s.view.line(s.farewell)
			return 0, nil
		}

		parsed := input.Parse(line)
		if !parsed.OK() {
			s.view.problem(parsed.Problem.Message())
		}

		if s.Dispatch(ctx, parsed) == Exit {
			return 0, nil
		}

		if atEOF {
			s.view.line(s.farewell)
			return 0, nil
		}
	}
}

// readLine returns the next line without its terminator. At end of input
// it returns whatever was buffered along with io.EOF.
func (s *Shell) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, err
}

// Dispatch executes one parsed line. An empty command is handled like an
// unknown one.
func (s *Shell) Dispatch(ctx context.Context, parsed input.Parsed) Signal {
	ctx, end := trace.Task(ctx, "shell.dispatch")
	defer end()

	kind := s.registry.KindOf(parsed.Command)
	s.log.Debug().
		Str("command", parsed.Command).
		Str("kind", kind.String()).
		Int("args", len(parsed.Arguments)).
		Msg("Dispatching shell command")

	switch kind {
	case command.Quit:
		s.view.line(s.farewell)
		return Exit
	case command.Help:
		s.view.help(s.registry.All())
	case command.Generate:
		s.runGenerate(ctx, parsed.Arguments)
	case command.Unknown:
		s.view.line(s.hint)
	}
	return Continue
}

func (s *Shell) runGenerate(ctx context.Context, args []string) {
	args = nonEmpty(args)
	if len(args) == 0 || s.generate == nil {
		s.view.line(s.hint)
		return
	}

	defer trace.Region(ctx, "shell.generate")()
	if err := s.generate(ctx, args, s.out); err != nil {
		s.log.Debug().Err(err).Strs("args", args).Msg("Generate failed")
		s.view.failed(err)
	}
}

// nonEmpty drops the empty tokens left by runs of spaces.
func nonEmpty(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
