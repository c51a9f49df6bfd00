package version

import "runtime"

// Build variables - these will be set during build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
	OS        = runtime.GOOS
	Arch      = runtime.GOARCH
)

// Name is the service name reported by the version endpoint and CLI
const Name = "Podcast Profile API"

// Info describes the running build
type Info struct {
	Name      string `json:"name" example:"Podcast Profile API"`
	Version   string `json:"version" example:"1.0.0"`
	GitCommit string `json:"git_commit" example:"a1b2c3d"`
	BuildTime string `json:"build_time" example:"2025-01-02T15:04:05Z"`
	GoVersion string `json:"go_version" example:"go1.23.6"`
	Platform  string `json:"platform" example:"linux/amd64"`
}

// Current returns the build information of this binary
func Current() Info {
	return Info{
		Name:      Name,
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		Platform:  OS + "/" + Arch,
	}
}
