// Package platform maps host OS and CPU reports onto the three
// provisioning targets and their filesystem conventions.
package platform

import (
	goruntime "runtime"
	"strings"

	"pybootstrap/internal/logging"
)

// Platform identifies which provisioning target the host belongs to
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformMac     Platform = "mac"
	PlatformLinux   Platform = "linux"
)

// Detect maps a raw OS identifier onto a platform tag. Matching is a
// case-insensitive substring check: "windows" wins, then "darwin",
// and everything else is treated as linux. There is no error path.
func Detect(osName string) Platform {
	name := strings.ToLower(osName)
	if strings.Contains(name, "windows") {
		return PlatformWindows
	}
	if strings.Contains(name, "darwin") {
		return PlatformMac
	}
	return PlatformLinux
}

// DetectHost returns the platform tag for the machine we are running on.
func DetectHost() Platform {
	p := Detect(goruntime.GOOS)
	logging.Debug("detected platform", "os", goruntime.GOOS, "platform", p)
	return p
}

// HostArch returns the CPU architecture report for this machine.
func HostArch() string {
	return goruntime.GOARCH
}
