package fd

import (
	"errors"
	"fmt"

	"github.com/cli/safeexec"
)

// ErrNotFound is returned when no usable fd program exists.
var ErrNotFound = errors.New("fd not found")

// lookPath is replaced in tests.
var lookPath = safeexec.LookPath

// Locate resolves the fd program to an executable path. An explicitly
// configured program must resolve; it is never substituted with a default.
func (c Config) Locate() (string, error) {
	if c.Program != "" {
		path, err := lookPath(c.Program)
		if err != nil {
			return "", fmt.Errorf("%w: %s=%q is not an executable: %v", ErrNotFound, ProgramEnv, c.Program, err)
		}
		return path, nil
	}

	for _, name := range defaultPrograms {
		if path, err := lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in PATH (install fd or set %s)", ErrNotFound, ProgramEnv)
}
