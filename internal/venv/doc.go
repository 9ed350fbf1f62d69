// Package venv builds the project virtual environment and installs
// packages into it.
//
// # Manager
//
// Manager covers the three pip-facing stages of the pipeline:
//
//	mgr := &venv.Manager{FS: fs, Runner: runner}
//
//	envPython, err := mgr.Ensure(ctx, python, ".venv", plat)
//	err = mgr.UpgradeTooling(ctx, envPython)
//	err = mgr.InstallPackages(ctx, envPython, pkgs)
//
// Ensure is idempotent: an existing environment directory is reused
// without validation beyond the post-condition that the in-environment
// interpreter exists (skipped in dry-run). UpgradeTooling always
// upgrades pip, setuptools, and wheel; there is no version check or
// conditional skip. InstallPackages issues one batched install so pip
// resolves the full set at once, and logs a no-op for an empty list.
package venv
