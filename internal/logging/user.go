package logging

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// User-facing output functions with colored status prefixes.
// These write to stdout/stderr directly for CLI output,
// separate from the structured debug logging.

var (
	// Out and ErrOut are the destinations for user-facing output.
	// Tests swap these to capture messages.
	Out    io.Writer = color.Output
	ErrOut io.Writer = color.Error

	infoColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgHiMagenta)
	errorColor   = color.New(color.FgRed)
)

// UserInfo prints an info message to stdout.
func UserInfo(format string, args ...interface{}) {
	infoColor.Fprintf(Out, "ℹ "+format+"\n", args...)
}

// UserSuccess prints a success message to stdout.
func UserSuccess(format string, args ...interface{}) {
	successColor.Fprintf(Out, "✓ "+format+"\n", args...)
}

// UserWarning prints a warning message to stderr.
func UserWarning(format string, args ...interface{}) {
	warningColor.Fprintf(ErrOut, "⚠ "+format+"\n", args...)
}

// UserError prints an error message to stderr.
func UserError(format string, args ...interface{}) {
	errorColor.Fprintf(ErrOut, "✗ "+format+"\n", args...)
}

// UserPlain prints an uncolored, unprefixed line to stdout.
// Used for copy-pastable output such as activation commands.
func UserPlain(format string, args ...interface{}) {
	fmt.Fprintf(Out, format+"\n", args...)
}
