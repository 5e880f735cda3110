package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/jparise/f/internal/fd"
	"github.com/jparise/f/internal/help"
	"github.com/jparise/f/internal/translate"
	"github.com/spf13/cobra"
)

// Exit codes for failures that happen before fd runs.
const (
	exitUsage      = 1
	exitValidation = 2
	exitCannotRun  = 126
	exitNotFound   = 127
)

var version = "dev"

// ExitError carries the status the process should exit with. Err is nil
// when fd itself exited non-zero, since fd has already reported why.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Runner runs fd with the assembled arguments and returns its exit status.
type Runner interface {
	Run(ctx context.Context, args []string) (int, error)
}

func newRootCmd(runner Runner) *cobra.Command {
	opts := translate.NewOptions()

	// Cobra's own flag parsing is off: it would act on -h and -v before
	// RunE, ahead of the more specific help topics. RunE parses instead.
	cmd := &cobra.Command{
		Use:   "f [flags] [<pattern>] [<path>...] [-- <fd-args>...]",
		Short: "Find files with fd using friendlier defaults",
		Long: `f translates a compact set of flags into an fd(1) command line.

It searches hidden and ignored files, matches against the full path, ignores
case, and wraps the pattern in wildcards unless told otherwise.`,
		Args:               cobra.ArbitraryArgs,
		SilenceErrors:      true,
		SilenceUsage:       true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			args, err := prepareArgs(fs, args)
			if err != nil {
				return usageError(err)
			}
			if err := fs.Parse(args); err != nil {
				return usageError(err)
			}

			inv := splitArgs(fs.Args(), fs.ArgsLenAtDash())
			return run(cmd.Context(), cmd.OutOrStdout(), runner, opts, inv)
		},
	}

	// The first positional argument ends flag parsing, so "f foo -d" looks
	// for "foo" under a directory named "-d".
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().SortFlags = false
	bindFlags(cmd.Flags(), opts)

	return cmd
}

func usageError(err error) error {
	return &ExitError{Code: exitUsage, Err: fmt.Errorf("%w (see f -h)", err)}
}

// Execute runs f with the process arguments and environment.
func Execute() error {
	cfg := fd.ConfigFromEnv(os.Getenv)
	terminal := term.FromEnv()

	runner := &fd.Runner{
		Config: cfg,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Output: fd.NewOutput(os.Stderr, terminal.IsColorEnabled()),
		Log:    fd.NewLogger(os.Stderr, cfg.Debug),
	}
	return newRootCmd(runner).Execute()
}

// splitArgs separates the pattern and paths from the tokens forwarded to
// fd. pflag records the position of a "--" seen while parsing flags;
// after the first positional argument it leaves "--" in place.
func splitArgs(args []string, dash int) translate.Invocation {
	if dash >= 0 {
		return translate.Invocation{Args: args[:dash], Passthrough: args[dash:]}
	}
	if i := slices.Index(args, "--"); i >= 0 {
		return translate.Invocation{Args: args[:i], Passthrough: args[i+1:]}
	}
	return translate.Invocation{Args: args}
}

func run(ctx context.Context, stdout io.Writer, runner Runner, opts *translate.Options, inv translate.Invocation) error {
	if topic, ok := help.Select(opts); ok {
		fmt.Fprint(stdout, topic.Text)
		return nil
	}

	if opts.ShowVersion {
		fmt.Fprintf(stdout, "f version %s\n", version)
		return nil
	}

	if err := translate.Validate(opts); err != nil {
		return &ExitError{Code: exitValidation, Err: err}
	}

	args := translate.Assemble(opts, inv)

	status, err := runner.Run(ctx, args)
	if err != nil {
		if errors.Is(err, fd.ErrNotFound) {
			return &ExitError{Code: exitNotFound, Err: err}
		}
		return &ExitError{Code: exitCannotRun, Err: err}
	}
	if status != 0 {
		return &ExitError{Code: status}
	}
	return nil
}
