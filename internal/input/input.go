// Package input turns one line typed at the shell prompt into a command
// token and its arguments.
package input

import (
	"strings"
	"unicode/utf8"
)

// Problem explains why a line produced no command.
type Problem int

const (
	// ProblemNone means the command token was accepted.
	ProblemNone Problem = iota
	// ProblemNoCommand means the line was empty or blank.
	ProblemNoCommand
	// ProblemShortPrefix means a one-character token did not start with '-'.
	ProblemShortPrefix
	// ProblemLongPrefix means a token longer than two characters did not start with '-'.
	ProblemLongPrefix
)

// Message is the text shown to the user for the problem.
func (p Problem) Message() string {
	switch p {
	case ProblemNoCommand:
		return "Sorry, you haven't written any command"
	case ProblemShortPrefix:
		return "Short command must start with '-'"
	case ProblemLongPrefix:
		return "Long command must start with '--'"
	default:
		return ""
	}
}

// Parsed is one line split into a command and its arguments. Command is
// empty when the line was rejected; Problem then says why.
type Parsed struct {
	Command   string
	Arguments []string
	Problem   Problem
}

// OK reports whether a command token was accepted.
func (p Parsed) OK() bool {
	return p.Problem == ProblemNone
}

// Parse splits line on single spaces. Runs of spaces yield empty tokens,
// which are kept as arguments. Tokens are not trimmed or case-folded.
func Parse(line string) Parsed {
	if strings.TrimSpace(line) == "" {
		return rejected(ProblemNoCommand)
	}

	tokens := strings.Split(line, " ")
	cmd := tokens[0]
	n := utf8.RuneCountInString(cmd)

	switch {
	case n < 2:
		if !shortPrefixOK(cmd) {
			return rejected(ProblemShortPrefix)
		}
	case n > 2:
		if !longPrefixOK(cmd) {
			return rejected(ProblemLongPrefix)
		}
	}
	// Two-character tokens are taken as they are.

	return Parsed{
		Command:   cmd,
		Arguments: tokens[1:],
	}
}

func rejected(p Problem) Parsed {
	return Parsed{Command: "", Arguments: []string{}, Problem: p}
}

func shortPrefixOK(token string) bool {
	return strings.HasPrefix(token, "-")
}

// longPrefixOK only looks at the first character, so "-help" is accepted as
// well as "--help". Requiring "--" here would reject single-dash long tokens.
func longPrefixOK(token string) bool {
	return strings.HasPrefix(token, "-")
}
