// Package version exposes build metadata for the hand CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the release version, injected via ldflags. Defaults to "dev"
// for local builds.
var Version = "dev"

// String renders the version together with the VCS revision and toolchain,
// suitable for a --version flag.
func String() string {
	return fmt.Sprintf("%s (revision %s, %s)", Version, Revision(), runtime.Version())
}

// Revision returns the VCS revision recorded in the build info, suffixed
// with "-dirty" when the working tree was modified. Returns "unknown" when
// no build info is available.
func Revision() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	rev := "unknown"
	dirty := ""

	for _, s := range buildInfo.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				dirty = "-dirty"
			}
		}
	}

	return rev + dirty
}
