// Package version reports build information for huffreport.
package version

import (
	"fmt"
	"runtime/debug"
)

// These are set with -ldflags "-X" at release time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info contains version information.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the version information, falling back to the module build
// info for anything that was not set at link time.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, setting := range bi.Settings {
		switch {
		case setting.Key == "vcs.revision" && info.Commit == "unknown":
			info.Commit = setting.Value
		case setting.Key == "vcs.time" && info.Date == "unknown":
			info.Date = setting.Value
		}
	}
	return info
}

// String formats the version with a short commit hash and build date when
// they are known.
func (info Info) String() string {
	if info.Commit == "unknown" || len(info.Commit) <= 7 {
		return info.Version
	}
	if info.Date == "unknown" {
		return fmt.Sprintf("%s (%s)", info.Version, info.Commit[:7])
	}
	return fmt.Sprintf("%s (%s, built %s)", info.Version, info.Commit[:7], info.Date)
}
