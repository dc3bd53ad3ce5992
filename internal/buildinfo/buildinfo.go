// Package buildinfo reports the viewer's version for the window title, logs
// and the version command.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and Date are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if c := commit(); c != "" {
		if len(c) > 12 {
			c = c[:12]
		}
		return c
	}
	return "dev"
}

// Long returns version, commit and build date on one line.
func Long() string {
	c := commit()
	if c == "" {
		c = "unknown"
	}
	return fmt.Sprintf("vecview %s (commit %s, built %s)", Version, c, Date)
}

// commit prefers the -ldflags value and falls back to the VCS stamp the Go
// toolchain embeds.
func commit() string {
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
