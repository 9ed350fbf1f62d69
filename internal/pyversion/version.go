// Package pyversion parses interpreter and pip version reports.
package pyversion

import (
	"fmt"
	"strings"
)

// Version represents an interpreter version with major, minor, and patch
// components. Minor and Patch may be -1 if not specified (e.g., "3"
// parses as {3, -1, -1}).
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses a bare version string into a Version struct.
// Accepts formats: "X.Y.Z", "X.Y", or "X". Any trailing text is ignored.
func Parse(versionStr string) (Version, error) {
	version := Version{
		Minor: -1,
		Patch: -1,
	}
	_, err := fmt.Sscanf(versionStr, "%d.%d.%d", &version.Major, &version.Minor, &version.Patch)
	if err != nil {
		// Not "X.Y.Z", try "X.Y"
		_, err = fmt.Sscanf(versionStr, "%d.%d", &version.Major, &version.Minor)
		if err != nil {
			// Not "X.Y", try "X"
			_, err = fmt.Sscanf(versionStr, "%d", &version.Major)
			if err != nil {
				return Version{}, fmt.Errorf("error parsing version: %v", err)
			}
		}
	}
	if version.Major < 0 || version.Minor < -1 || version.Patch < -1 {
		return Version{}, fmt.Errorf("invalid version: %s", versionStr)
	}
	return version, nil
}

// ParsePython parses output from "python --version" (e.g., "Python 3.10.5").
func ParsePython(report string) (Version, error) {
	parts := strings.Fields(strings.TrimSpace(report))
	if len(parts) != 2 || parts[0] != "Python" {
		return Version{}, fmt.Errorf("invalid interpreter report: %s", report)
	}
	return Parse(parts[1])
}

// ParsePip parses output from "pip --version" (e.g., "pip 23.0 from ...").
func ParsePip(report string) (Version, error) {
	parts := strings.Fields(strings.TrimSpace(report))
	if len(parts) < 2 || !strings.HasPrefix(parts[0], "pip") {
		return Version{}, fmt.Errorf("invalid pip report: %s", report)
	}
	return Parse(parts[1])
}

// Compare returns -1 if v < other, 0 if v == other, or 1 if v > other.
// Comparison is done component by component (major, then minor, then patch).
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		if v.Major > other.Major {
			return 1
		}
		return -1
	}
	if v.Minor != other.Minor {
		if v.Minor > other.Minor {
			return 1
		}
		return -1
	}
	if v.Patch != other.Patch {
		if v.Patch > other.Patch {
			return 1
		}
		return -1
	}
	return 0
}

// String returns the version as a string, omitting unspecified components.
func (v Version) String() string {
	if v.Patch != -1 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	if v.Minor != -1 {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d", v.Major)
}
