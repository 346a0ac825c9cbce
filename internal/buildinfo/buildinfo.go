// Package buildinfo carries the version stamped in by the linker.
package buildinfo

import "fmt"

// Set at build time via -ldflags "-X gldemo/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for window titles and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the full build line printed by -version.
func String() string {
	return fmt.Sprintf("gldemo %s (commit %s, built %s)", Short(), Commit, Date)
}
