package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// longFlags are the only long options f accepts.
var longFlags = map[string]bool{"help": true, "version": true}

// prepareArgs checks the flag tokens before pflag parses them. Long options
// other than longFlags are rejected. A value written in the same token as
// its flag ("-D3", "-E=x") is moved into a token of its own, because pflag
// would otherwise drop a leading "=" from the value.
//
// Scanning stops where pflag stops: at "--" or at the first token that is
// not a flag. Unknown shorthand characters are left for pflag to report.
func prepareArgs(fs *pflag.FlagSet, args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || len(arg) < 2 || arg[0] != '-' {
			return append(out, args[i:]...), nil
		}

		if strings.HasPrefix(arg, "--") {
			name, _, _ := strings.Cut(arg[2:], "=")
			if !longFlags[name] {
				return nil, fmt.Errorf("unknown flag: --%s", name)
			}
			out = append(out, arg)
			continue
		}

		split := false
		for j := 1; j < len(arg); j++ {
			flag := fs.ShorthandLookup(arg[j : j+1])
			if flag == nil || flag.NoOptDefVal != "" {
				continue
			}
			if j+1 < len(arg) {
				out = append(out, arg[:j+1], arg[j+1:])
			} else {
				out = append(out, arg)
				if i+1 < len(args) {
					i++
					out = append(out, args[i])
				}
			}
			split = true
			break
		}
		if !split {
			out = append(out, arg)
		}
	}
	return out, nil
}
