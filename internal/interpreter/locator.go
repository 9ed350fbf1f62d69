package interpreter

import (
	"context"
	"os"
	"path/filepath"

	"pybootstrap/internal/errors"
	"pybootstrap/internal/fetch"
	"pybootstrap/internal/logging"
	"pybootstrap/internal/platform"
	"pybootstrap/internal/system"
)

const (
	// DefaultBaseURL is the Miniforge latest-release asset location.
	DefaultBaseURL = "https://github.com/conda-forge/miniforge/releases/latest/download"

	stagingPrefix = "python-bootstrap-"
)

// pathCandidates are the interpreter names probed on the search path,
// in priority order.
var pathCandidates = []string{"python3", "python", "py"}

// Locator resolves the interpreter the rest of the pipeline runs
// against. All fields must be set; the bootstrap driver wires them.
type Locator struct {
	FS      system.FileSystem
	Exec    system.CommandExecutor
	Runner  *system.Runner
	Fetcher *fetch.Downloader

	// BaseURL is the release asset base for installer downloads.
	BaseURL string

	// Machine is the CPU architecture report used to pick an installer.
	Machine string
}

// Locate returns the interpreter path for this run. Priority: the
// explicit override, interpreters already on the search path, a
// previously installed portable runtime, then a fresh install into
// runtimeDir. The returned path is not revalidated by later stages.
func (l *Locator) Locate(ctx context.Context, explicit, runtimeDir string, p platform.Platform) (string, error) {
	if explicit != "" {
		// Accepted unconditionally in a dry run so the plan can show
		// the commands that would use it before it exists.
		if l.Runner.DryRun || l.FS.Exists(explicit) {
			logging.UserInfo("Using user-specified python interpreter: %s", explicit)
			return explicit, nil
		}
		return "", errors.InterpreterNotFound(explicit)
	}

	if found, ok := l.detectExisting(); ok {
		logging.UserInfo("Detected existing python interpreter: %s", found)
		return found, nil
	}

	runtimePython := p.RuntimePython(runtimeDir)
	if l.FS.Exists(runtimePython) {
		logging.UserInfo("Reusing portable runtime at %s", runtimePython)
		return runtimePython, nil
	}

	logging.UserInfo("No python detected. Installing portable runtime into %s...", runtimeDir)
	if err := l.install(ctx, runtimeDir, p); err != nil {
		return "", err
	}
	return runtimePython, nil
}

// detectExisting probes the candidate names, first as literal paths,
// then against the search path.
func (l *Locator) detectExisting() (string, bool) {
	for _, name := range pathCandidates {
		if l.FS.Exists(name) {
			logging.Debug("interpreter found as path", "candidate", name)
			return name, true
		}
		if path, err := l.Exec.LookPath(name); err == nil {
			logging.Debug("interpreter found on search path", "candidate", name, "path", path)
			return path, true
		}
	}
	return "", false
}

// install downloads the platform installer into a disposable staging
// directory and runs it silently against runtimeDir. The staging
// directory is removed afterwards; the runtime directory is created by
// the installer itself.
func (l *Locator) install(ctx context.Context, runtimeDir string, p platform.Platform) error {
	filename, err := platform.InstallerFilename(p, l.Machine)
	if err != nil {
		return err
	}
	url := l.BaseURL + "/" + filename

	if l.Runner.DryRun {
		// No staging directory is created in a dry run; show a
		// representative destination in the plan.
		dest := filepath.Join(os.TempDir(), stagingPrefix+"staging", filename)
		logging.UserInfo("Downloading %s -> %s", url, dest)
		return nil
	}

	staging, err := l.FS.MkdirTemp("", stagingPrefix+"*")
	if err != nil {
		return errors.Wrap(errors.ExitGeneralError, "creating staging directory", err)
	}
	defer func() {
		if rerr := l.FS.RemoveAll(staging); rerr != nil {
			logging.Warn("could not remove staging directory", "dir", staging, "error", rerr)
		}
	}()

	logging.UserInfo("Downloading %s -> %s", url, filepath.Join(staging, filename))
	installer, err := l.Fetcher.Download(url, staging, filename)
	if err != nil {
		return err
	}

	if p == platform.PlatformWindows {
		return l.Runner.Run(ctx, installer,
			"/InstallationType=JustMe",
			"/AddToPath=0",
			"/S",
			"/D="+runtimeDir,
		)
	}

	if err := os.Chmod(installer, 0o755); err != nil {
		return errors.Wrap(errors.ExitGeneralError, "marking installer executable", err)
	}
	return l.Runner.Run(ctx, "bash", installer, "-b", "-p", runtimeDir)
}
