package harness

import (
	"strings"

	"github.com/alessio/shellescape"
)

// Command is a program path plus its arguments.
type Command struct {
	Path string
	Args []string
}

// NewCommand builds a command from a program path and its arguments.
func NewCommand(path string, args ...string) Command {
	return Command{Path: path, Args: args}
}

// With returns a copy of the command with more arguments appended.
func (c Command) With(args ...string) Command {
	return Command{Path: c.Path, Args: append(append([]string(nil), c.Args...), args...)}
}

// String renders the command the way it would be typed into a shell. It is only meant for
// messages; commands are never run through a shell.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, shellescape.Quote(c.Path))
	for _, a := range c.Args {
		parts = append(parts, shellescape.Quote(a))
	}
	return strings.Join(parts, " ")
}
