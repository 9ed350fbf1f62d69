// Package logging provides logging utilities for pybootstrap.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("probing interpreter", "candidate", name)
//	logging.Warn("runtime dir exists but has no interpreter", "dir", dir)
//
// Every line carries a "run" attribute identifying the invocation.
//
// # User Output
//
// User-facing messages are formatted with colored status indicators:
//
//	logging.UserInfo("Creating virtual environment at %s...", envPath)
//	logging.UserSuccess("Environment ready!")
//	logging.UserWarning("Skipping empty package name")
//	logging.UserError("Bootstrap failed: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess, UserPlain: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info, cyan)
//   - ✓ (success, green)
//   - ⚠ (warning, magenta)
//   - ✗ (error, red)
package logging
