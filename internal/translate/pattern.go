package translate

// Compile rewrites pattern into the form fd needs to honor the match mode.
//
// Glob patterns gain a "**/" prefix unless matching is restricted to the
// basename, because fd is run with --full-path by default. Regex patterns
// look the same either way: fd is told about basename matching through
// the absence of --full-path, not through the pattern.
func Compile(pattern string, mode MatchMode, syntax Syntax, basenameOnly bool) string {
	switch syntax {
	case SyntaxFixed:
		return pattern
	case SyntaxRegex:
		switch mode {
		case MatchExact:
			return pattern
		case MatchTail:
			return ".*" + pattern
		default:
			return ".*" + pattern + ".*"
		}
	default:
		prefix := "**/"
		if basenameOnly {
			prefix = ""
		}
		switch mode {
		case MatchExact:
			return prefix + pattern
		case MatchTail:
			return prefix + "*" + pattern
		default:
			return prefix + "*" + pattern + "*"
		}
	}
}

// CompileAll compiles the primary pattern, if any, and each AND pattern
// using the same options.
func CompileAll(o *Options, pattern string, andPatterns []string) (string, []string) {
	syntax := o.Syntax()
	compiled := Compile(pattern, o.MatchMode, syntax, o.BasenameOnly)

	ands := make([]string, len(andPatterns))
	for i, p := range andPatterns {
		ands[i] = Compile(p, o.MatchMode, syntax, o.BasenameOnly)
	}
	return compiled, ands
}
