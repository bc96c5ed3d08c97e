package domain

import (
	"strconv"
	"strings"
)

// Platform identifies the OS and architecture variant used to select a bottle,
// in Homebrew's tag format (e.g. "arm64_sonoma", "x86_64_linux").
type Platform string

// String returns the platform tag.
func (p Platform) String() string {
	return string(p)
}

// DefaultMacOSRelease is the macOS release name assumed when the running
// release is unknown.
const DefaultMacOSRelease = "sonoma"

// macOSReleases maps macOS major versions to bottle release names.
// 10.x releases are keyed by minor version instead.
var macOSReleases = map[int]string{
	15: "sequoia",
	14: "sonoma",
	13: "ventura",
	12: "monterey",
	11: "big_sur",
}

var legacyMacOSReleases = map[int]string{
	15: "catalina",
	14: "mojave",
	13: "high_sierra",
	12: "sierra",
	11: "el_capitan",
	10: "yosemite",
}

// MacOSRelease returns the release name for a product version such as "13.6.1".
func MacOSRelease(productVersion string) (string, bool) {
	major, rest, _ := strings.Cut(productVersion, ".")
	maj, err := strconv.Atoi(major)
	if err != nil {
		return "", false
	}
	if maj != 10 {
		name, ok := macOSReleases[maj]
		return name, ok
	}
	minor, _, _ := strings.Cut(rest, ".")
	mnr, err := strconv.Atoi(minor)
	if err != nil {
		return "", false
	}
	name, ok := legacyMacOSReleases[mnr]
	return name, ok
}

// DetectPlatform maps the GOOS/GOARCH pair and, on darwin, the macOS product
// version to a bottle tag. An unknown macOS version falls back to
// DefaultMacOSRelease; the platform setting overrides it.
func DetectPlatform(goos, goarch, osVersion string) Platform {
	switch {
	case goos == "darwin":
		release, ok := MacOSRelease(osVersion)
		if !ok {
			release = DefaultMacOSRelease
		}
		if goarch == "arm64" {
			return Platform("arm64_" + release)
		}
		return Platform(release)
	case goos == "linux" && goarch == "arm64":
		return "arm64_linux"
	default:
		return "x86_64_linux"
	}
}

// DefaultPrefix returns Homebrew's default installation prefix for the platform.
func DefaultPrefix(goos, goarch string) string {
	switch {
	case goos == "darwin" && goarch == "arm64":
		return "/opt/homebrew"
	case goos == "darwin":
		return "/usr/local"
	default:
		return "/home/linuxbrew/.linuxbrew"
	}
}
