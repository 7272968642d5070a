// Package version provides centralized version management for mathscope.
// It supports semantic versioning, build-time injection, and version validation.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Build information that can be set at compile time via -ldflags
var (
	// Version is the semantic version of the application
	Version = "0.3.0"

	// GitCommit is the git commit hash when the binary was built
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built
	BuildDate = "unknown"
)

// Info represents comprehensive version information.
type Info struct {
	Version   string          `json:"version"`
	GitCommit string          `json:"gitCommit"`
	BuildDate string          `json:"buildDate"`
	GoVersion string          `json:"goVersion"`
	Platform  string          `json:"platform"`
	SemVer    *semver.Version `json:"-"`
}

// Get returns the complete version information for the current build.
func Get() *Info {
	info := &Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
	if sv, err := semver.NewVersion(Version); err == nil {
		info.SemVer = sv
	}
	return info
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// IsValid reports whether the configured version parses as semantic version.
func IsValid() bool {
	_, err := semver.NewVersion(Version)
	return err == nil
}

// Compare compares the current version against another version string.
// Returns -1, 0 or 1 and an error if either version is invalid.
func Compare(other string) (int, error) {
	current, err := semver.NewVersion(Version)
	if err != nil {
		return 0, fmt.Errorf("invalid current version %q: %w", Version, err)
	}
	target, err := semver.NewVersion(other)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", other, err)
	}
	return current.Compare(target), nil
}

// String returns a human-readable one-line version summary.
func (i *Info) String() string {
	return fmt.Sprintf("mathscope v%s (%s, built %s, %s)", i.Version, i.GitCommit, i.BuildDate, i.Platform)
}
