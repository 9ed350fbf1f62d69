// Package packages assembles the library list installed into the
// provisioned environment.
package packages

import (
	"slices"

	"pybootstrap/internal/platform"
)

// Set holds the fixed library lists the installer starts from. The
// zero value installs nothing; DefaultSet returns the curated lists.
type Set struct {
	// Base libraries installed on every platform.
	Base []string

	// Windows libraries appended only on the windows platform.
	Windows []string

	// Unix libraries appended on mac and linux.
	Unix []string
}

// DefaultSet returns the curated automation libraries most scripts
// rely on, in install order.
func DefaultSet() Set {
	return Set{
		Base: []string{
			"requests",
			"urllib3",
			"python-dotenv",
			"pydantic",
			"pandas",
			"numpy",
			"pyyaml",
			"schedule",
			"rich",
			"loguru",
			"click",
			"boto3",
			"paramiko",
			"beautifulsoup4",
			"lxml",
			"selenium",
			"openpyxl",
			"psutil",
		},
		Windows: []string{"pywin32"},
		Unix:    nil,
	}
}

// Gather resolves the final install list: the base libraries, then the
// platform-conditional additions, then each extra that is not already
// present, in first-seen order. Empty extra names are dropped.
func Gather(set Set, p platform.Platform, extras []string) []string {
	pkgs := make([]string, 0, len(set.Base)+len(set.Windows)+len(extras))
	pkgs = append(pkgs, set.Base...)

	if p == platform.PlatformWindows {
		pkgs = append(pkgs, set.Windows...)
	} else {
		pkgs = append(pkgs, set.Unix...)
	}

	for _, extra := range extras {
		if extra == "" {
			continue
		}
		if !slices.Contains(pkgs, extra) {
			pkgs = append(pkgs, extra)
		}
	}

	return pkgs
}
