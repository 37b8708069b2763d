package version

import (
	"fmt"
	"runtime"
	"time"

	"github.com/Masterminds/semver"
)

// DevelopmentGitVersion is reported by binaries built without version ldflags.
const DevelopmentGitVersion = "v0.0.0-xxxxxxx"

// Set at build time with
//
//	-ldflags "-X github.com/bacalhau-project/ramdisk/pkg/version.GITVERSION=v1.2.3 ..."
var (
	GITVERSION = DevelopmentGitVersion
	GITCOMMIT  = ""
	BUILDDATE  = ""
)

// BuildVersionInfo describes the running binary.
type BuildVersionInfo struct {
	Major      string    `json:"Major,omitempty"`
	Minor      string    `json:"Minor,omitempty"`
	GitVersion string    `json:"GitVersion"`
	GitCommit  string    `json:"GitCommit"`
	BuildDate  time.Time `json:"BuildDate"`
	GOOS       string    `json:"GOOS"`
	GOARCH     string    `json:"GOARCH"`
}

// Get returns the version of the running binary.
func Get() *BuildVersionInfo {
	info := &BuildVersionInfo{
		GitVersion: GITVERSION,
		GitCommit:  GITCOMMIT,
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
	}
	if v, err := semver.NewVersion(GITVERSION); err == nil {
		info.Major = fmt.Sprint(v.Major())
		info.Minor = fmt.Sprint(v.Minor())
	}
	if date, err := time.Parse(time.RFC3339, BUILDDATE); err == nil {
		info.BuildDate = date
	}
	return info
}

// IsDevelopment is true for binaries built without version information.
func (b *BuildVersionInfo) IsDevelopment() bool {
	return b.GitVersion == DevelopmentGitVersion
}

// AtLeast reports whether the binary is a release of at least minimum.
// Development builds always satisfy it.
func (b *BuildVersionInfo) AtLeast(minimum string) (bool, error) {
	if b.IsDevelopment() {
		return true, nil
	}
	current, err := semver.NewVersion(b.GitVersion)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", b.GitVersion, err)
	}
	constraint, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}
	return constraint.Check(current), nil
}
