// Package bootstrap provides the environment provisioning pipeline.
//
// This package wires the individual stages (platform detection,
// interpreter location, venv creation, tooling upgrade, package
// install) into one sequential run with a single configuration
// surface.
//
// # Provisioner
//
// Provisioner orchestrates a run with all stage dependencies wired:
//
//	p := bootstrap.NewProvisioner(bootstrap.Options{
//	    EnvDir: ".venv",
//	    Extras: []string{"httpx"},
//	    DryRun: false,
//	})
//
//	result, err := p.Run(ctx)
//
// # Pipeline
//
// The Provisioner.Run method:
//  1. Normalizes the configured paths (tilde expansion, absolutization)
//  2. Locates a python interpreter, installing a portable runtime if needed
//  3. Creates the virtual environment, or reuses an existing one
//  4. Upgrades pip, setuptools, and wheel inside the environment
//  5. Installs the base package set plus any extras in one batch
//
// Stages run strictly in order and the first failing stage aborts the
// run. There is no rollback: files already written stay in place, and
// the next invocation reuses them through the same existence checks.
//
// # Options
//
// Options is immutable for the duration of a run. Zero values fall
// back to the built-in defaults (".venv", "python-runtime", the
// Miniforge release URL, the host platform and architecture, the
// process-wide filesystem and executor). Tests override FS, Exec,
// Client, and BaseURL to run against fakes.
package bootstrap
