package manifest

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"pybootstrap/internal/errors"
	"pybootstrap/internal/system"
)

// Manifest describes a bootstrap manifest file. All fields are
// optional; command-line flags take precedence over manifest values.
type Manifest struct {
	// Packages lists additional packages, installed before any
	// --extra values and deduplicated against the base set.
	Packages []string `toml:"packages" yaml:"packages"`

	// Env overrides pipeline paths.
	Env EnvConfig `toml:"env" yaml:"env"`
}

// EnvConfig holds the [env] table of a manifest.
type EnvConfig struct {
	// Dir overrides the virtual environment directory.
	Dir string `toml:"dir" yaml:"dir"`

	// RuntimeDir overrides the portable runtime directory.
	RuntimeDir string `toml:"runtime-dir" yaml:"runtime-dir"`

	// PythonBin pins an explicit interpreter path.
	PythonBin string `toml:"python-bin" yaml:"python-bin"`
}

// Load reads and parses a manifest. The format follows the file
// extension: .toml for TOML, .yaml or .yml for YAML. Unknown keys are
// rejected so typos fail loudly instead of being ignored.
func Load(fs system.FileSystem, path string) (*Manifest, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.ManifestError(fmt.Sprintf("reading manifest %s", path), err)
	}

	var m Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), &m)
		if err != nil {
			return nil, errors.ManifestError(fmt.Sprintf("parsing manifest %s", path), err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.ManifestError(fmt.Sprintf("unknown keys in manifest %s: %v", path, undecoded), nil)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && err != io.EOF {
			return nil, errors.ManifestError(fmt.Sprintf("parsing manifest %s", path), err)
		}
	default:
		return nil, errors.ManifestError(fmt.Sprintf("unsupported manifest format %q (use .toml, .yaml, or .yml)", filepath.Ext(path)), nil)
	}

	return &m, nil
}
