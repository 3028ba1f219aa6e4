// Package version reports which gitie build is running.
package version

import (
	"fmt"
	"runtime"
)

// Set with -ldflags at release time, for example
//
//	-X gitie/pkg/version.Version=1.2.3 -X gitie/pkg/version.Commit=$(git rev-parse --short HEAD)
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info is the build stamp plus the toolchain and target it was built with.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get reads the stamped variables and the runtime.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String is the one-line form printed by "gitie version".
func (i Info) String() string {
	return fmt.Sprintf("gitie version %s (commit: %s) built at %s with %s on %s",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
