package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic version of the build.
	Version = "0.0.0"
	// Revision is the VCS revision of the build.
	Revision = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == "0.0.0" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && Revision == "unknown" && s.Value != "" {
			Revision = s.Value
		}
	}
}

// String returns the version and revision in one string.
func String() string {
	return fmt.Sprintf("%s+%s", Version, Revision)
}
