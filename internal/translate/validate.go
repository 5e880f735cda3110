package translate

import (
	"fmt"
	"regexp"
)

var depthPattern = regexp.MustCompile(`^[0-9]+$`)

// ValidationError reports an invalid flag value or combination of flags.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validate checks constraints that span more than one flag. It must run
// before any pattern is compiled.
func Validate(o *Options) error {
	if o.MaxDepth != nil && !depthPattern.MatchString(*o.MaxDepth) {
		return &ValidationError{fmt.Sprintf("invalid max depth %q: must be a non-negative integer", *o.MaxDepth)}
	}

	if o.FixedStrings && o.Regex {
		return &ValidationError{"-F (fixed strings) cannot be combined with -r (regex)"}
	}

	if o.FixedStrings && o.MatchMode != MatchContains {
		return &ValidationError{fmt.Sprintf("-F (fixed strings) cannot be combined with -w or -T (match mode %q)", o.MatchMode)}
	}

	return nil
}
