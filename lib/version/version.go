// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
)

// These variables are set via -ldflags at build time.
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty indicates whether there were uncommitted changes.
	GitDirty = "false"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// BuildInfo is a snapshot of the injected build metadata together with
// the toolchain and platform the binary was compiled for. It formats
// itself for humans via String and Verbose and serializes as JSON for
// the version command's --json output.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Dirty     bool   `json:"dirty"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Current returns the build metadata of the running binary.
func Current() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    GitCommit,
		Dirty:     GitDirty == "true",
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns the one-line form used in --version output:
// "0.1.0-dev (abc1234-dirty, 2026-02-10T12:00:00Z)".
func (i BuildInfo) String() string {
	commit := i.Commit
	if i.Dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (%s, %s)", i.Version, commit, i.BuildTime)
}

// Verbose returns the multi-line form: the String line followed by the
// Go toolchain version and target platform.
func (i BuildInfo) Verbose() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s", i.String(), i.GoVersion, i.Platform)
}
