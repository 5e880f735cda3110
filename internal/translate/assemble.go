// Package translate turns f's options into an equivalent fd argument vector.
package translate

import (
	"strings"
)

// vcsDirs are excluded unless the user asks to see version control metadata.
var vcsDirs = []string{".git", ".hg", ".svn"}

// nonEmptySize is fd's size filter for "at least one byte".
const nonEmptySize = "+1b"

// Invocation is the positional input that follows the flags.
type Invocation struct {
	Args        []string // Pattern followed by search paths
	Passthrough []string // Tokens after "--", forwarded verbatim
}

// Pattern returns the primary pattern and whether one was given.
func (inv Invocation) Pattern() (string, bool) {
	if len(inv.Args) == 0 {
		return "", false
	}
	return inv.Args[0], true
}

// Paths returns the search roots.
func (inv Invocation) Paths() []string {
	if len(inv.Args) < 2 {
		return nil
	}
	return inv.Args[1:]
}

// Assemble builds fd's arguments, excluding the program name. The options
// must already have passed Validate. Identical input always yields an
// identical vector.
func Assemble(o *Options, inv Invocation) []string {
	var args []string
	add := func(a ...string) { args = append(args, a...) }

	if o.CaseSensitive {
		add("-s")
	} else {
		add("-i")
	}

	if !o.RespectHidden {
		add("-H")
	}
	if !o.RespectGitignore {
		add("-I")
	}

	if o.FollowLinks {
		add("-L")
	}

	if o.Print0 {
		add("-0")
	}
	if o.ListDetails {
		add("-l")
	}

	if !o.BasenameOnly {
		add("-p")
	}

	switch o.Syntax() {
	case SyntaxFixed:
		add("-F")
	case SyntaxGlob:
		add("-g")
	}

	if o.MaxResults != "" {
		add("--max-results", o.MaxResults)
	}

	for _, t := range TypeFilters(o) {
		add("-t", t)
	}

	if o.AbsolutePath {
		add("-a")
	}

	if o.NonEmpty {
		add("-S", nonEmptySize)
	}
	for _, s := range o.Sizes {
		add("-S", s)
	}

	if o.MaxDepth != nil {
		add("-d", *o.MaxDepth)
	}

	if o.ChangedWithin != "" {
		add("--changed-within", o.ChangedWithin)
	}
	if o.ChangedBefore != "" {
		add("--changed-before", o.ChangedBefore)
	}

	for _, e := range o.Extensions {
		add("-e", e)
	}

	if o.OneFileSystem {
		add("--one-file-system")
	}

	if !o.ShowVCS {
		for _, dir := range vcsDirs {
			add("--exclude=" + dir)
		}
	}
	for _, e := range o.Excludes {
		add("--exclude=" + e)
	}

	pattern, hasPattern := inv.Pattern()
	compiled, ands := CompileAll(o, pattern, o.AndPatterns)
	for _, p := range ands {
		add("--and", p)
	}

	add(inv.Passthrough...)

	if hasPattern {
		add(compiled)
		add(inv.Paths()...)
	}

	// fd treats everything after -x/-X as part of the command, so this
	// has to come after the paths.
	switch o.Exec.Mode {
	case ExecEach:
		add("-x")
		add(strings.Fields(o.Exec.Command)...)
	case ExecBatch:
		add("-X")
		add(strings.Fields(o.Exec.Command)...)
	}

	return args
}

// TypeFilters returns the distinct type filters in the order fd receives
// them: the shorthand switches first, then each comma separated -t entry.
func TypeFilters(o *Options) []string {
	var all []string
	if o.FilesOnly {
		all = append(all, "f")
	}
	if o.DirsOnly {
		all = append(all, "d")
	}
	if o.Executable {
		all = append(all, "x")
	}
	for _, entry := range o.Types {
		for _, t := range strings.Split(entry, ",") {
			if t != "" {
				all = append(all, t)
			}
		}
	}

	seen := make(map[string]bool)
	types := make([]string, 0, len(all))
	for _, t := range all {
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	return types
}
