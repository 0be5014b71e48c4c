// Package version reports how the buildbench binary was built.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// Branch is the git branch, set via ldflags.
	Branch string
	// BuildUser is the user who built the binary, set via ldflags.
	BuildUser string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string
)

// Info describes a build of the binary.
type Info struct {
	Version   string `json:"version"`
	Revision  string `json:"revision"`
	Branch    string `json:"branch,omitempty"`
	BuildUser string `json:"buildUser,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary.
func Get() Info {
	info := Info{
		Version:   Version,
		Branch:    Branch,
		BuildUser: BuildUser,
		BuildDate: BuildDate,
		Revision:  "unknown",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	if info.Version == "" {
		info.Version = buildInfo.Main.Version
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			info.Revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if modified {
		info.Revision += "-dirty"
	}

	return info
}

// String formats i on one line.
func (i Info) String() string {
	var sb strings.Builder

	v := i.Version
	if v == "" {
		v = "(devel)"
	}

	fmt.Fprintf(&sb, "buildbench %s (revision %s", v, i.Revision)

	if i.Branch != "" {
		fmt.Fprintf(&sb, ", branch %s", i.Branch)
	}

	if i.BuildDate != "" {
		fmt.Fprintf(&sb, ", built %s", i.BuildDate)
	}

	if i.BuildUser != "" {
		fmt.Fprintf(&sb, " by %s", i.BuildUser)
	}

	fmt.Fprintf(&sb, ") %s %s", i.GoVersion, i.Platform)

	return sb.String()
}
