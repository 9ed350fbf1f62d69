package bootstrap

import (
	"io"
	"net/http"

	"pybootstrap/internal/platform"
	"pybootstrap/internal/system"
)

// Defaults mirrored by the CLI flags.
const (
	DefaultEnvDir     = ".venv"
	DefaultRuntimeDir = "python-runtime"
)

// Options holds all options for a provisioning run.
type Options struct {
	// EnvDir is the virtual environment location (default ".venv")
	EnvDir string

	// RuntimeDir receives the portable runtime when no interpreter is
	// found (default "python-runtime")
	RuntimeDir string

	// PythonBin overrides interpreter detection (optional)
	PythonBin string

	// Extras are packages installed after the base set, in order,
	// with duplicates dropped
	Extras []string

	// DryRun prints every mutating action instead of performing it
	DryRun bool

	// BaseURL overrides the Miniforge release asset location
	BaseURL string

	// Machine overrides the detected CPU architecture
	Machine string

	// Platform overrides host platform detection
	Platform platform.Platform

	// Out receives command echoes and download progress (default stdout)
	Out io.Writer

	// Client is the HTTP client for installer downloads (optional)
	Client *http.Client

	// FS and Exec default to the process-wide implementations
	FS   system.FileSystem
	Exec system.CommandExecutor
}

// Result holds the result of a successful provisioning run.
type Result struct {
	// Platform is the platform the pipeline ran for
	Platform platform.Platform

	// PythonBin is the interpreter that created the environment
	PythonBin string

	// EnvDir is the resolved virtual environment path
	EnvDir string

	// EnvPython is the interpreter inside the environment
	EnvPython string

	// PythonVersion is the provisioned interpreter's version report,
	// empty in dry runs and when the probe fails
	PythonVersion string

	// Packages is the full install set in order
	Packages []string

	// ActivationHint is the shell snippet that activates the environment
	ActivationHint string
}
