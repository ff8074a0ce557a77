package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandString(t *testing.T) {
	c := NewCommand("./cases/commandline", "--log", "my file", "it's")
	assert.Equal(t, `./cases/commandline --log 'my file' 'it'"'"'s'`, c.String())
}

func TestCommandWithDoesNotShareArgs(t *testing.T) {
	base := NewCommand("prog", "-q")
	a := base.With("x")
	b := base.With("y")
	assert.Equal(t, []string{"-q"}, base.Args)
	assert.Equal(t, []string{"-q", "x"}, a.Args)
	assert.Equal(t, []string{"-q", "y"}, b.Args)
}
