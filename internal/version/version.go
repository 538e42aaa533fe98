// Package version reports which sitecheck build is running. The release
// workflow stamps the values below with
//
//	-ldflags "-X github.com/auditware/sitecheck/internal/version.Version=x.y.z"
//
// and likewise for Commit and Date. A plain go build keeps the defaults.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"

	// Commit is the revision the binary was built from.
	Commit = "unknown"

	// Date is the RFC3339 build timestamp.
	Date = "unknown"

	// GoVersion is the toolchain that compiled the binary.
	GoVersion = runtime.Version()
)

// Info is the build metadata printed by `sitecheck version`.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo collects the build metadata and the running platform.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String formats the build metadata for `sitecheck version`. The commit and
// date are included only when the release workflow stamped them.
func String() string {
	info := GetInfo()
	if Commit != "unknown" && Date != "unknown" {
		return fmt.Sprintf("sitecheck version %s (commit: %s, built: %s, %s, %s)",
			info.Version, shortCommit(info.Commit), info.Date, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("sitecheck version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
}

// Short returns the bare version used by `sitecheck --version`.
func Short() string {
	return Version
}

// shortCommit abbreviates a commit hash to eight characters.
func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
