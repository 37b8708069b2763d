// Package platform classifies the host operating system into the families
// a RAM disk can be provisioned on.
package platform

import (
	"runtime"
	"strings"
)

type Platform string

const (
	Linux   Platform = "Linux"
	Windows Platform = "Windows"
	Mac     Platform = "Mac"
	Unknown Platform = "Unknown"
)

// classification order matters: the first matching prefix wins.
var prefixes = []Platform{Linux, Windows, Mac}

// Classify maps an operating system name such as "Linux", "Windows 10" or
// "Mac OS X" to a Platform. Matching is a case-sensitive prefix match.
func Classify(osName string) Platform {
	for _, p := range prefixes {
		if strings.HasPrefix(osName, string(p)) {
			return p
		}
	}
	return Unknown
}

func (p Platform) String() string {
	return string(p)
}

// Supported reports whether provisioning can proceed on p at all.
func (p Platform) Supported() bool {
	return p != Unknown
}

// hostNames translates GOOS values into the operating system names the
// classifier understands. Anything not listed is reported verbatim.
var hostNames = map[string]string{
	"linux":   "Linux",
	"android": "Linux",
	"darwin":  "Mac OS X",
	"windows": "Windows",
}

// HostOSName returns the name of the running operating system.
func HostOSName() string {
	return osName(runtime.GOOS)
}

func osName(goos string) string {
	if name, ok := hostNames[goos]; ok {
		return name
	}
	return goos
}
