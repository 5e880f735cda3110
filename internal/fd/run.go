// Package fd locates and runs the fd program.
package fd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

// Runner executes fd with an assembled argument vector.
type Runner struct {
	Config Config
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Output *Output
	Log    *logrus.Logger
}

// NewLogger returns a logger that writes to w, at debug level when debug
// is set and warnings only otherwise.
func NewLogger(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// Run starts fd, waits for it to exit, and returns its exit status. An
// error means fd could not be started; a non-zero status is not an error.
func (r *Runner) Run(ctx context.Context, args []string) (int, error) {
	path, err := r.Config.Locate()
	if err != nil {
		return 0, err
	}
	r.Log.WithFields(logrus.Fields{"program": path, "args": len(args)}).Debug("resolved fd")

	if r.Config.Debug {
		r.Output.Command(path, args)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("starting %s: %w", path, err)
	}

	// fd shares our terminal and receives interrupts directly. Hold on to
	// them here so that fd decides how to exit and we report its status.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigs:
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	err = cmd.Wait()
	signal.Stop(sigs)
	close(done)

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return 0, fmt.Errorf("waiting for %s: %w", path, err)
	}

	status := exitStatus(cmd.ProcessState)
	r.Log.WithField("status", status).Debug("fd exited")
	return status, nil
}

// exitStatus follows the shell convention of 128+N for a child killed by
// signal N.
func exitStatus(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return state.ExitCode()
}
