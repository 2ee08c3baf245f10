// Package command holds the table of shell commands.
package command

// Kind identifies what a shell command does. The set is closed: the shell
// switches over every value, so a new command means a new Kind here.
type Kind int

const (
	// Unknown is any token that names no command.
	Unknown Kind = iota
	// Help prints the command table.
	Help
	// Generate produces fake records.
	Generate
	// Quit ends the session.
	Quit
)

func (k Kind) String() string {
	switch k {
	case Help:
		return "help"
	case Generate:
		return "generate"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Descriptor describes one shell command for lookup and for the help table.
type Descriptor struct {
	Kind        Kind
	Short       string // e.g. "-h"
	Long        string // e.g. "--help"
	Description string
}

// Matches reports whether token is the short or long form of the command.
func (d Descriptor) Matches(token string) bool {
	return token != "" && (token == d.Short || token == d.Long)
}

// Registry is an ordered, immutable list of descriptors.
type Registry struct {
	descriptors []Descriptor
}

// NewRegistry builds a registry keeping the given order.
func NewRegistry(descriptors ...Descriptor) *Registry {
	ds := make([]Descriptor, len(descriptors))
	copy(ds, descriptors)
	return &Registry{descriptors: ds}
}

// Default returns the PipSeed commands: help, generate, quit.
func Default() *Registry {
	return NewRegistry(
		Descriptor{
			Kind:        Help,
			Short:       "-h",
			Long:        "--help",
			Description: "Show the manual",
		},
		Descriptor{
			Kind:        Generate,
			Short:       "-g",
			Long:        "--generate",
			Description: "Generate new data: -g <type> [-n count] [-f json|csv|sql|yaml] [-t table] [-o file] [-p] [--seed n]",
		},
		Descriptor{
			Kind:        Quit,
			Short:       "-q",
			Long:        "--quit",
			Description: "Exit the program",
		},
	)
}

// All returns the descriptors in insertion order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Lookup finds the command named by token. The first match wins.
func (r *Registry) Lookup(token string) (Descriptor, bool) {
	for _, d := range r.descriptors {
		if d.Matches(token) {
			return d, true
		}
	}
	return Descriptor{Kind: Unknown}, false
}

// KindOf is Lookup reduced to the command kind.
func (r *Registry) KindOf(token string) Kind {
	d, _ := r.Lookup(token)
	return d.Kind
}
