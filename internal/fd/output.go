package fd

import (
	"fmt"
	"io"

	"github.com/alessio/shellescape"
	"github.com/mgutz/ansi"
)

// Output writes diagnostics to stderr with optional color.
type Output struct {
	stderr io.Writer
	cyan   func(string) string
}

// NewOutput creates a new Output with optional color support.
func NewOutput(stderr io.Writer, colorize bool) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stderr: stderr,
		cyan:   color("cyan"),
	}
}

// Command echoes a command line the way "set -x" does in a shell.
func (o *Output) Command(program string, args []string) {
	words := append([]string{program}, args...)
	fmt.Fprintf(o.stderr, "%s\n", o.cyan("+ "+shellescape.QuoteCommand(words)))
}
