package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Prefix marks a console line as a command.
const Prefix = ":"

var (
	// ErrMissingSubcommand is returned by Execute when no command name was given.
	ErrMissingSubcommand = errors.New("missing subcommand")
	// ErrUnknownCommand is returned by Execute for a name nobody registered.
	ErrUnknownCommand = errors.New("unknown command")
)

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse with the remaining positional arguments.
// A nil FlagSet means the command takes positional arguments only.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first token after the prefix (e.g. "clear").
// run is called after fs.Parse(args[1:]) succeeds. fs may be nil for commands without flags;
// those get args[1:] untouched, so positional values like "-1" are not mistaken for flags.
// A later Register with the same name replaces the earlier one.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) {
	if fs != nil {
		// Parse errors are returned to the caller and logged there.
		fs.SetOutput(io.Discard)
	}
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Help returns one "name  usage" line per command, sorted by name.
func (r *Registry) Help() []string {
	var out []string
	for _, n := range r.Names() {
		out = append(out, fmt.Sprintf("%s%s  %s", Prefix, n, r.cmds[n].Usage))
	}
	return out
}

// Parse interprets line as a console line. If line starts with the prefix, the rest is tokenized
// by spaces and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, Prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(Prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns ErrMissingSubcommand, ErrUnknownCommand, a parse error, or the error from Run.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrMissingSubcommand
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	rest := args[1:]
	if cmd.FlagSet != nil {
		if err := cmd.FlagSet.Parse(rest); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		rest = cmd.FlagSet.Args()
	}
	if err := cmd.Run(rest); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Run parses line and executes it. handled is false when line is not a command at all.
func (r *Registry) Run(line string) (handled bool, err error) {
	args, ok := Parse(line)
	if !ok {
		return false, nil
	}
	return true, r.Execute(args)
}
