package venv

import (
	"context"

	"pybootstrap/internal/errors"
	"pybootstrap/internal/logging"
	"pybootstrap/internal/platform"
	"pybootstrap/internal/pyversion"
	"pybootstrap/internal/system"
)

// Manager drives venv creation and pip operations. The bootstrap
// driver wires both fields.
type Manager struct {
	FS     system.FileSystem
	Runner *system.Runner
}

// Ensure creates the virtual environment at envDir, or reuses it when
// the path already exists, and returns the interpreter inside it. In a
// dry run the returned path is the one the environment would contain.
func (m *Manager) Ensure(ctx context.Context, python, envDir string, p platform.Platform) (string, error) {
	if !m.FS.Exists(envDir) {
		logging.UserInfo("Creating virtual environment at %s...", envDir)
		if err := m.Runner.Run(ctx, python, "-m", "venv", envDir); err != nil {
			return "", err
		}
	} else {
		logging.UserInfo("Using existing virtual environment at %s.", envDir)
	}

	envPython := p.VenvPython(envDir)
	if !m.Runner.DryRun && !m.FS.Exists(envPython) {
		return "", errors.EnvMissing(envPython)
	}
	return envPython, nil
}

// UpgradeTooling brings pip, setuptools and wheel up to date inside
// the environment.
func (m *Manager) UpgradeTooling(ctx context.Context, envPython string) error {
	logging.UserInfo("Upgrading pip, setuptools, and wheel...")
	err := m.Runner.Run(ctx, envPython, "-m", "pip", "install", "--upgrade", "pip", "setuptools", "wheel")
	if err != nil {
		return err
	}

	// Best effort; the upgrade already succeeded.
	if out, err := m.Runner.Capture(ctx, envPython, "-m", "pip", "--version"); err == nil && len(out) > 0 {
		if v, perr := pyversion.ParsePip(string(out)); perr == nil {
			logging.Debug("pip tooling upgraded", "version", v.String())
		}
	}
	return nil
}

// InstallPackages installs the package list in a single batched pip
// invocation so the resolver sees the full set at once.
func (m *Manager) InstallPackages(ctx context.Context, envPython string, packages []string) error {
	if len(packages) == 0 {
		logging.UserInfo("No packages requested.")
		return nil
	}

	logging.UserInfo("Installing %d packages...", len(packages))
	args := append([]string{"-m", "pip", "install", "--upgrade"}, packages...)
	return m.Runner.Run(ctx, envPython, args...)
}
