package errors

import (
	"errors"
	"fmt"
)

// Exit codes for pybootstrap
const (
	ExitSuccess             = 0
	ExitGeneralError        = 1
	ExitUnsupportedArch     = 2
	ExitInterpreterNotFound = 3
	ExitCommandFailed       = 4
	ExitDownloadFailed      = 5
	ExitEnvMissing          = 6
	ExitManifestError       = 7
)

// BootstrapError is the base error type for pybootstrap
type BootstrapError struct {
	Code    int
	Message string
	Cause   error
}

func (e *BootstrapError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BootstrapError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit code for this error
func (e *BootstrapError) ExitCode() int {
	return e.Code
}

// New creates a new BootstrapError
func New(code int, message string) *BootstrapError {
	return &BootstrapError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a BootstrapError
func Wrap(code int, message string, cause error) *BootstrapError {
	return &BootstrapError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// UnsupportedArch returns an error for an architecture with no installer build.
// It is raised before any download is attempted.
func UnsupportedArch(platform, arch string) *BootstrapError {
	return New(ExitUnsupportedArch, fmt.Sprintf("unsupported architecture %q for platform %q", arch, platform))
}

// InterpreterNotFound returns an error for an explicit interpreter path that does not exist
func InterpreterNotFound(path string) *BootstrapError {
	return New(ExitInterpreterNotFound, fmt.Sprintf("specified python interpreter not found: %s", path))
}

// CommandFailed returns an error for a shelled-out process exiting non-zero.
// The message carries the child's exit code and the full command line.
func CommandFailed(cmdline string, exitCode int, cause error) *BootstrapError {
	return Wrap(ExitCommandFailed, fmt.Sprintf("command failed (%d): %s", exitCode, cmdline), cause)
}

// DownloadFailed returns an error for a failed artifact fetch
func DownloadFailed(url string, cause error) *BootstrapError {
	return Wrap(ExitDownloadFailed, fmt.Sprintf("download failed: %s", url), cause)
}

// EnvMissing returns an error for a venv whose interpreter is absent after creation
func EnvMissing(path string) *BootstrapError {
	return New(ExitEnvMissing, fmt.Sprintf("cannot locate interpreter inside venv: %s", path))
}

// ManifestError returns an error for manifest loading or validation failures
func ManifestError(message string, cause error) *BootstrapError {
	return Wrap(ExitManifestError, message, cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var bootErr *BootstrapError
	if errors.As(err, &bootErr) {
		return bootErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
