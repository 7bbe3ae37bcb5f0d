package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Version is this program's version string, injected at build time for
// release builds.
var Version string

// UsageVersion introspects the process debug data for module versions and
// returns a version string for display.
func UsageVersion(includeDeps bool) string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		panic("failed to read BuildInfo")
	}

	if Version == "" {
		// The version wasn't set by ldflags, so fallback to the Go module
		// version embedded in the binary.
		Version = bi.Main.Version
	}

	if !includeDeps {
		if Version == "(devel)" {
			return "mvdict development build (unknown exact version)"
		}
		return fmt.Sprintf("mvdict %s", Version)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", bi.Path, Version)
	for _, dep := range bi.Deps {
		fmt.Fprintf(&b, "\n\t%s %s", dep.Path, dep.Version)
	}
	return b.String()
}
