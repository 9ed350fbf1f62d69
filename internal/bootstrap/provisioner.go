package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"pybootstrap/internal/errors"
	"pybootstrap/internal/fetch"
	"pybootstrap/internal/interpreter"
	"pybootstrap/internal/logging"
	"pybootstrap/internal/packages"
	"pybootstrap/internal/platform"
	"pybootstrap/internal/pyversion"
	"pybootstrap/internal/system"
	"pybootstrap/internal/venv"
)

// Provisioner drives the provisioning pipeline with all stage
// dependencies wired.
type Provisioner struct {
	opts    Options
	runner  *system.Runner
	locator *interpreter.Locator
	venvs   *venv.Manager
}

// NewProvisioner applies option defaults and wires the pipeline stages.
func NewProvisioner(opts Options) *Provisioner {
	if opts.EnvDir == "" {
		opts.EnvDir = DefaultEnvDir
	}
	if opts.RuntimeDir == "" {
		opts.RuntimeDir = DefaultRuntimeDir
	}
	if opts.BaseURL == "" {
		opts.BaseURL = interpreter.DefaultBaseURL
	}
	if opts.Machine == "" {
		opts.Machine = platform.HostArch()
	}
	if opts.Platform == "" {
		opts.Platform = platform.DetectHost()
	}
	if opts.Out == nil {
		opts.Out = logging.Out
	}
	if opts.FS == nil {
		opts.FS = system.DefaultFS()
	}
	if opts.Exec == nil {
		opts.Exec = system.DefaultExecutor()
	}

	runner := system.NewRunner(opts.Exec, opts.Out, opts.DryRun)
	return &Provisioner{
		opts:   opts,
		runner: runner,
		locator: &interpreter.Locator{
			FS:      opts.FS,
			Exec:    opts.Exec,
			Runner:  runner,
			Fetcher: fetch.New(opts.Client, opts.Out),
			BaseURL: opts.BaseURL,
			Machine: opts.Machine,
		},
		venvs: &venv.Manager{FS: opts.FS, Runner: runner},
	}
}

// Run executes the pipeline: locate or install an interpreter, build
// the virtual environment, upgrade the packaging tooling, install the
// package set. It stops at the first failing stage; anything already
// written stays in place for the next run to reuse.
func (p *Provisioner) Run(ctx context.Context) (*Result, error) {
	envDir, err := normalizePath(p.opts.EnvDir)
	if err != nil {
		return nil, errors.Wrap(errors.ExitGeneralError, "resolving environment directory", err)
	}
	runtimeDir, err := normalizePath(p.opts.RuntimeDir)
	if err != nil {
		return nil, errors.Wrap(errors.ExitGeneralError, "resolving runtime directory", err)
	}
	pythonBin := p.opts.PythonBin
	if pythonBin != "" {
		if pythonBin, err = normalizePath(pythonBin); err != nil {
			return nil, errors.Wrap(errors.ExitGeneralError, "resolving python override", err)
		}
	}

	plat := p.opts.Platform
	logging.Debug("starting provisioning",
		"platform", plat,
		"env_dir", envDir,
		"runtime_dir", runtimeDir,
		"dry_run", p.opts.DryRun)

	python, err := p.locator.Locate(ctx, pythonBin, runtimeDir, plat)
	if err != nil {
		return nil, err
	}

	envPython, err := p.venvs.Ensure(ctx, python, envDir, plat)
	if err != nil {
		return nil, err
	}

	if err := p.venvs.UpgradeTooling(ctx, envPython); err != nil {
		return nil, err
	}

	pkgs := packages.Gather(packages.DefaultSet(), plat, p.opts.Extras)
	if err := p.venvs.InstallPackages(ctx, envPython, pkgs); err != nil {
		return nil, err
	}

	return &Result{
		Platform:       plat,
		PythonBin:      python,
		EnvDir:         envDir,
		EnvPython:      envPython,
		PythonVersion:  p.probeVersion(ctx, envPython),
		Packages:       pkgs,
		ActivationHint: plat.ActivationHint(envDir),
	}, nil
}

// probeVersion reports the provisioned interpreter's version. Probe
// failures are logged and ignored; the environment is already built.
func (p *Provisioner) probeVersion(ctx context.Context, envPython string) string {
	if p.runner.DryRun {
		return ""
	}
	out, err := p.runner.Capture(ctx, envPython, "--version")
	if err != nil {
		logging.Debug("version probe failed", "python", envPython, "error", err)
		return ""
	}
	v, err := pyversion.ParsePython(string(out))
	if err != nil {
		logging.Debug("unrecognized version report", "report", strings.TrimSpace(string(out)))
		return ""
	}
	logging.Debug("provisioned interpreter", "python", envPython, "version", v.String())
	return v.String()
}

// normalizePath expands a leading ~ and absolutizes the path.
func normalizePath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = home + path[1:]
	}
	return filepath.Abs(path)
}
