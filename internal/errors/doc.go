// Package errors provides typed errors with exit codes for pybootstrap.
//
// # Error Types
//
// BootstrapError is the base error type that wraps an error with an exit code:
//
//	type BootstrapError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess             = 0  // Success
//	ExitGeneralError        = 1  // General/unknown errors
//	ExitUnsupportedArch     = 2  // No installer build for this CPU architecture
//	ExitInterpreterNotFound = 3  // Explicit interpreter path does not exist
//	ExitCommandFailed       = 4  // A shelled-out command exited non-zero
//	ExitDownloadFailed      = 5  // Installer artifact fetch failed
//	ExitEnvMissing          = 6  // Interpreter missing inside the created venv
//	ExitManifestError       = 7  // Manifest file could not be loaded
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.UnsupportedArch("linux", "riscv64")
//	errors.InterpreterNotFound("/opt/python/bin/python3")
//	errors.CommandFailed(cmdline, 2, err)
//	errors.DownloadFailed(url, err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
