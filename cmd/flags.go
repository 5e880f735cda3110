package cmd

import (
	"strconv"

	"github.com/jparise/f/internal/translate"
	"github.com/spf13/pflag"
)

// switchValue is a flag that takes no argument. pflag sets it to "true"
// when it appears, alone or bundled with other switches.
type switchValue interface {
	pflag.Value
	IsBoolFlag() bool
}

// toggleValue turns a boolean option on.
type toggleValue struct{ p *bool }

func (v toggleValue) String() string   { return strconv.FormatBool(v.p != nil && *v.p) }
func (v toggleValue) Type() string     { return "bool" }
func (v toggleValue) IsBoolFlag() bool { return true }

func (v toggleValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*v.p = b
	return nil
}

// constValue is a switch that stores a fixed string.
type constValue struct {
	p     *string
	value string
}

func (v constValue) String() string   { return strconv.FormatBool(v.p != nil && *v.p == v.value) }
func (v constValue) Type() string     { return "bool" }
func (v constValue) IsBoolFlag() bool { return true }

func (v constValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if b {
		*v.p = v.value
	} else if *v.p == v.value {
		*v.p = ""
	}
	return nil
}

// matchModeValue is a switch that selects a match mode. The last one
// given wins.
type matchModeValue struct {
	opts *translate.Options
	mode translate.MatchMode
}

func (v matchModeValue) String() string {
	return strconv.FormatBool(v.opts != nil && v.opts.MatchMode == v.mode)
}
func (v matchModeValue) Type() string     { return "bool" }
func (v matchModeValue) IsBoolFlag() bool { return true }

func (v matchModeValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if b {
		v.opts.MatchMode = v.mode
	} else if v.opts.MatchMode == v.mode {
		v.opts.MatchMode = translate.MatchContains
	}
	return nil
}

// scalarValue stores the most recent value given.
type scalarValue struct{ p *string }

func (v scalarValue) String() string {
	if v.p == nil {
		return ""
	}
	return *v.p
}
func (v scalarValue) Type() string { return "string" }

func (v scalarValue) Set(s string) error {
	*v.p = s
	return nil
}

// optionalValue stores the most recent value given and records that the
// flag appeared at all, even with an empty value.
type optionalValue struct{ p **string }

func (v optionalValue) String() string {
	if v.p == nil || *v.p == nil {
		return ""
	}
	return **v.p
}
func (v optionalValue) Type() string { return "string" }

func (v optionalValue) Set(s string) error {
	*v.p = &s
	return nil
}

// appendValue collects every value in order. Unlike pflag's slice flags it
// never splits on commas.
type appendValue struct{ p *[]string }

func (v appendValue) String() string { return "" }
func (v appendValue) Type() string   { return "stringArray" }

func (v appendValue) Set(s string) error {
	*v.p = append(*v.p, s)
	return nil
}

// execValue selects an execution mode along with its command.
type execValue struct {
	opts *translate.Options
	mode translate.ExecMode
}

func (v execValue) String() string {
	if v.opts == nil || v.opts.Exec.Mode != v.mode {
		return ""
	}
	return v.opts.Exec.Command
}
func (v execValue) Type() string { return "command" }

func (v execValue) Set(s string) error {
	v.opts.Exec = translate.Exec{Mode: v.mode, Command: s}
	return nil
}

// flagDef maps one flag character to the operation it performs.
type flagDef struct {
	short string
	long  string
	usage string
	value pflag.Value
}

// flagTable lists every flag f accepts. Anything else is a parse error.
// pflag needs a long name for each flag, but only --help and --version
// are accepted on the command line (see prepareArgs).
func flagTable(o *translate.Options) []flagDef {
	return []flagDef{
		// Types
		{"f", "files", "files only", toggleValue{&o.FilesOnly}},
		{"d", "dirs", "directories only", toggleValue{&o.DirsOnly}},
		{"x", "executable", "executables only", toggleValue{&o.Executable}},
		{"t", "type", "filter by type (repeatable, comma lists allowed)", appendValue{&o.Types}},

		// Matching
		{"n", "name", "match the basename instead of the full path", toggleValue{&o.BasenameOnly}},
		{"w", "exact", "match the whole name or path", matchModeValue{o, translate.MatchExact}},
		{"T", "tail", "match the end of the name or path", matchModeValue{o, translate.MatchTail}},
		{"r", "regex", "treat patterns as regular expressions", toggleValue{&o.Regex}},
		{"F", "fixed-strings", "treat patterns as literal strings", toggleValue{&o.FixedStrings}},
		{"C", "case-sensitive", "match case", toggleValue{&o.CaseSensitive}},
		{"P", "and", "additional pattern that must also match (repeatable)", appendValue{&o.AndPatterns}},

		// Filtering
		{"G", "respect-gitignore", "skip ignored files", toggleValue{&o.RespectGitignore}},
		{"O", "respect-hidden", "skip hidden files", toggleValue{&o.RespectHidden}},
		{"V", "vcs", "include version control directories", toggleValue{&o.ShowVCS}},
		{"E", "exclude", "exclude entries matching glob (repeatable)", appendValue{&o.Excludes}},
		{"e", "extension", "filter by extension (repeatable)", appendValue{&o.Extensions}},
		{"S", "size", "filter by size (repeatable)", appendValue{&o.Sizes}},
		{"N", "non-empty", "skip empty files", toggleValue{&o.NonEmpty}},
		{"c", "changed-within", "modified within duration or since date", scalarValue{&o.ChangedWithin}},
		{"b", "changed-before", "modified before duration or date", scalarValue{&o.ChangedBefore}},
		{"D", "max-depth", "maximum search depth", optionalValue{&o.MaxDepth}},
		{"o", "one-file-system", "do not cross file system boundaries", toggleValue{&o.OneFileSystem}},
		{"L", "follow", "follow symbolic links", toggleValue{&o.FollowLinks}},

		// Output
		{"a", "absolute-path", "print absolute paths", toggleValue{&o.AbsolutePath}},
		{"l", "list-details", "long listing format", toggleValue{&o.ListDetails}},
		{"0", "print0", "separate results by NUL", toggleValue{&o.Print0}},
		{"1", "one", "stop after the first result", constValue{&o.MaxResults, "1"}},

		// Execution
		{"X", "exec", "run command for each result", execValue{o, translate.ExecEach}},
		{"B", "exec-batch", "run command once with all results", execValue{o, translate.ExecBatch}},

		{"h", "help", "show help", toggleValue{&o.ShowHelp}},
		{"v", "version", "show the version", toggleValue{&o.ShowVersion}},
	}
}

// bindFlags registers the flag table on fs.
func bindFlags(fs *pflag.FlagSet, o *translate.Options) {
	for _, def := range flagTable(o) {
		flag := fs.VarPF(def.value, def.long, def.short, def.usage)
		if _, ok := def.value.(switchValue); ok {
			flag.NoOptDefVal = "true"
		}
	}
}
