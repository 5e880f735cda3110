package translate

// MatchMode controls how much of a name or path a pattern must cover.
type MatchMode string

const (
	MatchContains MatchMode = "contains"
	MatchExact    MatchMode = "exact"
	MatchTail     MatchMode = "tail"
)

// Syntax is the pattern language handed to fd.
type Syntax int

const (
	SyntaxGlob Syntax = iota
	SyntaxRegex
	SyntaxFixed
)

// ExecMode selects which of fd's command execution forms to use.
type ExecMode int

const (
	ExecNone  ExecMode = iota
	ExecEach           // fd -x: once per match
	ExecBatch          // fd -X: once with all matches
)

// Exec is a command to run on the search results.
type Exec struct {
	Mode    ExecMode
	Command string
}

// HelpValue is the sentinel value that turns a value-taking flag into a
// request for that flag's help topic.
const HelpValue = "help"

// Options contains every switch and flag value from a single invocation.
type Options struct {
	FilesOnly        bool
	DirsOnly         bool
	Executable       bool
	RespectGitignore bool
	RespectHidden    bool
	NonEmpty         bool
	Regex            bool
	BasenameOnly     bool
	AbsolutePath     bool
	Print0           bool
	OneFileSystem    bool
	ListDetails      bool
	CaseSensitive    bool
	FixedStrings     bool
	FollowLinks      bool
	ShowVCS          bool
	ShowHelp         bool
	ShowVersion      bool

	MatchMode MatchMode

	MaxDepth      *string // Nil means unset
	MaxResults    string  // Empty means unlimited
	ChangedWithin string
	ChangedBefore string

	Extensions  []string
	Types       []string // Entries may be comma-joined lists
	Excludes    []string
	AndPatterns []string
	Sizes       []string

	Exec Exec
}

// NewOptions returns Options holding the defaults.
func NewOptions() *Options {
	return &Options{MatchMode: MatchContains}
}

// Syntax reports the pattern syntax the options select.
func (o *Options) Syntax() Syntax {
	switch {
	case o.FixedStrings:
		return SyntaxFixed
	case o.Regex:
		return SyntaxRegex
	default:
		return SyntaxGlob
	}
}
