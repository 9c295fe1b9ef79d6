// Package buildinfo reports the version graphspin was built from.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/graphspin/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/graphspin/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/graphspin
//
// A plain "go install" leaves them unset; the module version and VCS
// revision recorded by the toolchain are used instead.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func init() {
	fillFromBuildInfo(debug.ReadBuildInfo())
}

func fillFromBuildInfo(bi *debug.BuildInfo, ok bool) {
	if !ok || bi == nil {
		return
	}
	if Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == "none" && s.Value != "" {
				Commit = s.Value
				if len(Commit) > 12 {
					Commit = Commit[:12]
				}
			}
		case "vcs.time":
			if Date == "unknown" && s.Value != "" {
				Date = s.Value
			}
		}
	}
}

// String returns the build information, one field per line.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, %s)\n", Version, Commit, Date)
}
