// Package misc keeps small helpers needed across the program.
package misc

import (
	"runtime/debug"
	"strings"
)

const appName = "spritec"

// Build time variables, set by the linker. When absent we fall back to
// whatever module build info is available.
var (
	version = ""
	gitHash = ""
)

// GetAppName returns program name to be used in logs, reports and temporary
// file names.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	if len(version) > 0 {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) > 0 {
		return bi.Main.Version
	}
	return "unknown"
}

// GetGitHash returns short git hash of the commit program was built from.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				if len(s.Value) > 7 {
					return s.Value[:7]
				}
				return s.Value
			}
		}
	}
	return strings.Repeat("0", 7)
}
