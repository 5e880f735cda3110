package fd

import (
	"strings"
)

const (
	// ProgramEnv names the environment variable that overrides the fd program.
	ProgramEnv = "F_FD"
	// DebugEnv names the environment variable that enables the command echo.
	DebugEnv = "F_DEBUG"
)

// defaultPrograms are tried in order when ProgramEnv is unset. Debian and
// Ubuntu install fd as fdfind.
var defaultPrograms = []string{"fd", "fdfind"}

// Config holds process-wide settings read once at startup.
type Config struct {
	Program string // Name or path of fd; empty means discover it
	Debug   bool   // Echo the assembled command before running it
}

// ConfigFromEnv builds a Config using getenv, which is normally os.Getenv.
func ConfigFromEnv(getenv func(string) string) Config {
	return Config{
		Program: strings.TrimSpace(getenv(ProgramEnv)),
		Debug:   isTruthy(getenv(DebugEnv)),
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
