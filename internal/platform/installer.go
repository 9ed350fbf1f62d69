package platform

import (
	"strings"

	"pybootstrap/internal/errors"
)

// InstallerFilename returns the Miniforge release asset name for a
// platform and CPU architecture. Six combinations are supported:
// x86_64/amd64 and arm64/aarch64 crossed with the three platforms.
// Anything else is a fatal unsupported-architecture error, raised
// before any download is attempted.
func InstallerFilename(p Platform, machine string) (string, error) {
	var family string
	switch strings.ToLower(machine) {
	case "x86_64", "amd64":
		family = "x86_64"
	case "arm64", "aarch64":
		family = "arm64"
	default:
		return "", errors.UnsupportedArch(string(p), machine)
	}

	switch p {
	case PlatformWindows:
		return "Miniforge3-Windows-" + family + ".exe", nil
	case PlatformMac:
		return "Miniforge3-MacOSX-" + family + ".sh", nil
	default:
		// Linux assets name the 64-bit ARM family aarch64
		if family == "arm64" {
			family = "aarch64"
		}
		return "Miniforge3-Linux-" + family + ".sh", nil
	}
}
