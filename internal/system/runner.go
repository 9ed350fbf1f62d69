package system

import (
	"context"
	"fmt"
	"io"
	"os"

	shellquote "github.com/kballard/go-shellquote"

	"pybootstrap/internal/errors"
	"pybootstrap/internal/logging"
)

// Runner executes external commands on behalf of the bootstrap pipeline.
// Every command line is echoed to Out before execution so the user sees
// exactly what runs. With DryRun set, commands are echoed but skipped.
type Runner struct {
	Exec   CommandExecutor
	Out    io.Writer
	DryRun bool
}

// NewRunner returns a Runner writing echoes to out. A nil executor falls
// back to the process default, a nil writer to stdout.
func NewRunner(exec CommandExecutor, out io.Writer, dryRun bool) *Runner {
	if exec == nil {
		exec = DefaultExecutor()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Runner{Exec: exec, Out: out, DryRun: dryRun}
}

// CommandLine renders a command and its arguments as one shell-quoted line.
func CommandLine(name string, args ...string) string {
	return shellquote.Join(append([]string{name}, args...)...)
}

// Run echoes the command line and executes the command with output
// streaming to the terminal. A non-zero child exit becomes a
// CommandFailed error carrying the exit code and the echoed line.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	cmdline := CommandLine(name, args...)
	fmt.Fprintf(r.Out, "\n$ %s\n", cmdline)

	if r.DryRun {
		logging.Debug("dry-run, command skipped", "cmd", cmdline)
		return nil
	}

	if err := r.Exec.ExecuteStreaming(ctx, name, args...); err != nil {
		return errors.CommandFailed(cmdline, ExitCode(err), err)
	}
	return nil
}

// Capture echoes nothing and returns the command's combined output.
// Used for silent probes such as interpreter version checks.
func (r *Runner) Capture(ctx context.Context, name string, args ...string) ([]byte, error) {
	if r.DryRun {
		logging.Debug("dry-run, probe skipped", "cmd", CommandLine(name, args...))
		return nil, nil
	}
	return r.Exec.Execute(ctx, name, args...)
}
