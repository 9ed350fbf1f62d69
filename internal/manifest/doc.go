// Package manifest loads optional bootstrap manifest files.
//
// A manifest is an explicit input file (never discovered or persisted
// by the tool) naming extra packages and default path overrides:
//
//	packages = ["httpx", "polars"]
//
//	[env]
//	dir = "envs/auto"
//	runtime-dir = "runtime"
//	python-bin = ""
//
// The format follows the file extension: .toml for TOML, .yaml or
// .yml for YAML. Both decoders run strict, so unknown keys are
// manifest errors rather than silently ignored typos.
//
// # Precedence
//
// Manifest values sit between flags and built-in defaults: an
// explicit flag wins over the manifest, which wins over the default.
// Manifest packages are appended ahead of --extra values and
// deduplicate against the base set the same way extras do.
package manifest
