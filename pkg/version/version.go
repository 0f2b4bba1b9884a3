// Package version reports the build version of pagenav.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Set at build time with -ldflags "-X github.com/rshade/pagenav/pkg/version.version=...".
//
//nolint:gochecknoglobals // Injected by the linker.
var (
	version   = "0.1.0-dev"
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the build version normalised to semver, without a
// leading "v". Unparseable versions are returned unchanged.
func GetVersion() string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return version
	}
	return v.String()
}

// Info is the full build description.
type Info struct {
	Version   string `json:"version"              yaml:"version"`
	GitCommit string `json:"git_commit,omitempty" yaml:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty" yaml:"build_date,omitempty"`
}

// GetInfo returns the build description.
func GetInfo() Info {
	return Info{Version: GetVersion(), GitCommit: gitCommit, BuildDate: buildDate}
}

// String implements fmt.Stringer.
func (i Info) String() string {
	s := "pagenav " + i.Version
	if i.GitCommit != "" {
		s += fmt.Sprintf(" (%s)", i.GitCommit)
	}
	if i.BuildDate != "" {
		s += " built " + i.BuildDate
	}
	return s
}

// IsPrerelease reports whether v is a semver prerelease such as 1.2.0-rc.1.
func IsPrerelease(v string) bool {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return false
	}
	return parsed.Prerelease() != ""
}

// AtLeast reports whether v satisfies the ">= minimum" constraint.
func AtLeast(v, minimum string) (bool, error) {
	c, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", v, err)
	}
	return c.Check(parsed), nil
}
