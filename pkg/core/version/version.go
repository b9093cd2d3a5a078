// ============================================================================
// lox - scripting language toolchain
// ============================================================================
//
// Package:     version
// Description: Build version information, set via -ldflags at release time
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Overridden with -ldflags "-X github.com/msto63/lox/pkg/core/version.Version=..."
var (
	Version   = "0.3.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Short returns "lox vX.Y.Z"
func (i Info) Short() string {
	return "lox v" + i.Version
}

// Details returns the indented build lines printed below Short
func (i Info) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "  Git Commit: %s\n", i.GitCommit)
	fmt.Fprintf(&b, "  Build Date: %s\n", i.BuildDate)
	fmt.Fprintf(&b, "  Go Version: %s\n", i.GoVersion)
	fmt.Fprintf(&b, "  OS/Arch:    %s\n", i.Platform)
	return b.String()
}

// String returns the multi-line form printed by "lox version"
func (i Info) String() string {
	return i.Short() + "\n" + i.Details()
}
