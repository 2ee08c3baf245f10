package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pipseed/pipseed/internal/command"
	"github.com/pipseed/pipseed/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPrompt   = "Please, write your instruction :"
	testFarewell = "Goodbye, I hope you enjoyed it!"
	testHint     = "You can use '-h' or '--help' to see the manual"
)

type generateCall struct {
	args []string
}

func newTestShell(in string, gen GenerateFunc) (*Shell, *bytes.Buffer) {
	out := &bytes.Buffer{}
	s := New(Options{
		Registry: command.Default(),
		Banner:   "Welcome to PipSeed\nEnjoy\n",
		Prompt:   testPrompt,
		Farewell: testFarewell,
		In:       strings.NewReader(in),
		Out:      out,
		Generate: gen,
	})
	return s, out
}

func TestRun_QuitShort(t *testing.T) {
	s, out := newTestShell("-q\n-h\n", nil)

	code, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	output := out.String()
	assert.Contains(t, output, testFarewell)
	assert.Equal(t, 1, strings.Count(output, testPrompt), "no prompt after quit")
	assert.NotContains(t, output, Separator, "lines after quit are not read")
}

func TestRun_QuitLong(t *testing.T) {
	s, out := newTestShell("--quit\n", nil)

	code, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), testFarewell)
}

func TestRun_BannerPrintedOnceBeforePrompt(t *testing.T) {
	s, out := newTestShell("-x\n-x\n-q\n", nil)

	_, err := s.Run(context.Background())
	require.NoError(t, err)

	output := out.String()
	assert.Equal(t, 1, strings.Count(output, "Welcome to PipSeed"))
	assert.Less(t, strings.Index(output, "Enjoy"), strings.Index(output, testPrompt))
	assert.Equal(t, 3, strings.Count(output, testPrompt))
}

func TestRun_Help(t *testing.T) {
	for _, token := range []string{"-h", "--help"} {
		t.Run(token, func(t *testing.T) {
			s, out := newTestShell(token+"\n-q\n", nil)

			_, err := s.Run(context.Background())
			require.NoError(t, err)

			output := out.String()
			assert.Equal(t, 3, strings.Count(output, Separator))

			help := strings.Index(output, "--help")
			generate := strings.Index(output, "--generate")
			quit := strings.Index(output, "--quit")
			require.True(t, help >= 0 && generate >= 0 && quit >= 0)
			assert.Less(t, help, generate)
			assert.Less(t, generate, quit)
			assert.Contains(t, output, "Show the manual")
			assert.Contains(t, output, "Exit the program")
		})
	}
}

func TestRun_HelpBlocksEndWithSeparator(t *testing.T) {
	s, out := newTestShell("-h\n-q\n", nil)
	_, err := s.Run(context.Background())
	require.NoError(t, err)

	lines := strings.Split(out.String(), "\n")
	separators := 0
	for i, line := range lines {
		if line == Separator {
			separators++
			assert.Contains(t, lines[i-1], "Description")
			assert.Contains(t, lines[i-2], "Long command")
			assert.Contains(t, lines[i-3], "Short command")
		}
	}
	assert.Equal(t, 3, separators)
}

func TestRun_UnknownCommandsPrintHint(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		extra string
	}{
		{name: "unknown short", line: "-x"},
		{name: "unknown word", line: "foo", extra: "Long command must start with '--'"},
		{name: "bare generate", line: "-g"},
		{name: "long generate without args", line: "--generate"},
		{name: "single dash help", line: "-help"},
		{name: "single letter", line: "h", extra: "Short command must start with '-'"},
		{name: "empty line", line: "", extra: "haven't written any command"},
		{name: "blank line", line: "   ", extra: "haven't written any command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newTestShell(tt.line+"\n-q\n", nil)

			code, err := s.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 0, code)

			output := out.String()
			assert.Equal(t, 1, strings.Count(output, testHint))
			assert.NotContains(t, output, Separator)
			assert.Equal(t, 2, strings.Count(output, testPrompt), "loop continues after %q", tt.line)
			if tt.extra != "" {
				assert.Contains(t, output, tt.extra)
			}
		})
	}
}

func TestRun_BareGenerateDoesNotCallHook(t *testing.T) {
	var calls []generateCall
	gen := func(_ context.Context, args []string, _ io.Writer) error {
		calls = append(calls, generateCall{args: args})
		return nil
	}

	s, out := newTestShell("-g\n-g   \n-q\n", gen)
	_, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, calls)
	assert.Equal(t, 2, strings.Count(out.String(), testHint))
}

func TestRun_GenerateWithArguments(t *testing.T) {
	var calls []generateCall
	gen := func(_ context.Context, args []string, w io.Writer) error {
		calls = append(calls, generateCall{args: args})
		_, err := io.WriteString(w, "GENERATED\n")
		return err
	}

	s, out := newTestShell("-g  person -n 2\n--generate user\n-q\n", gen)
	_, err := s.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, calls, 2)
	assert.Equal(t, []string{"person", "-n", "2"}, calls[0].args)
	assert.Equal(t, []string{"user"}, calls[1].args)
	assert.Equal(t, 2, strings.Count(out.String(), "GENERATED"))
	assert.NotContains(t, out.String(), testHint)
}

func TestRun_GenerateErrorKeepsLooping(t *testing.T) {
	gen := func(context.Context, []string, io.Writer) error {
		return errors.New("unknown data type: robot")
	}

	s, out := newTestShell("-g robot\n-q\n", gen)
	code, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	output := out.String()
	assert.Contains(t, output, "Error: unknown data type: robot")
	assert.Equal(t, 2, strings.Count(output, testPrompt))
}

func TestRun_EndOfInput(t *testing.T) {
	s, out := newTestShell("-x\n", nil)

	code, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), testHint)
	assert.Contains(t, out.String(), testFarewell)
}

func TestRun_UnterminatedLastLine(t *testing.T) {
	s, out := newTestShell("-h", nil)

	code, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, 3, strings.Count(out.String(), Separator))
	assert.Contains(t, out.String(), testFarewell)
}

func TestRun_UnterminatedQuit(t *testing.T) {
	s, out := newTestShell("-q", nil)

	code, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, 1, strings.Count(out.String(), testFarewell))
}

func TestRun_WindowsLineEndings(t *testing.T) {
	s, out := newTestShell("-h\r\n-q\r\n", nil)

	_, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out.String(), Separator))
}

func TestRun_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, out := newTestShell("-h\n", nil)
	code, err := s.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, code)
	assert.NotContains(t, out.String(), testPrompt)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestRun_ReadError(t *testing.T) {
	s := New(Options{In: brokenReader{}, Out: &bytes.Buffer{}})

	code, err := s.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, code)
	assert.Contains(t, err.Error(), "tty gone")
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name   string
		parsed input.Parsed
		want   Signal
		output string
	}{
		{"quit", input.Parse("-q"), Exit, testFarewell},
		{"quit with args", input.Parse("--quit now"), Exit, testFarewell},
		{"help", input.Parse("-h extra"), Continue, Separator},
		{"rejected", input.Parse("x"), Continue, testHint},
		{"unknown", input.Parse("-z"), Continue, testHint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newTestShell("", nil)
			assert.Equal(t, tt.want, s.Dispatch(context.Background(), tt.parsed))
			assert.Contains(t, out.String(), tt.output)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	s := New(Options{})
	assert.Equal(t, testHint, s.hint)
	assert.NotNil(t, s.log)
	assert.Len(t, s.registry.All(), 3)
}

func TestHint_FollowsRegistry(t *testing.T) {
	r := command.NewRegistry(
		command.Descriptor{Kind: command.Help, Short: "-?", Long: "--manual"},
		command.Descriptor{Kind: command.Quit, Short: "-x", Long: "--exit"},
	)
	out := &bytes.Buffer{}
	s := New(Options{Registry: r, In: strings.NewReader("-q\n-x\n"), Out: out})

	code, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "You can use '-?' or '--manual' to see the manual")
}

func TestHint_WithoutHelpCommand(t *testing.T) {
	r := command.NewRegistry(command.Descriptor{Kind: command.Quit, Short: "-q", Long: "--quit"})
	assert.Equal(t, "Unknown command", New(Options{Registry: r}).hint)
}
