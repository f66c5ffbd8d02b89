// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports the build metadata of resourceref binaries.
//
// Four package-level variables are injected at build time via -ldflags:
//
//	go build -ldflags "-X github.com/resourceref-project/resourceref/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
//   - [GitCommit]: short git SHA of the build
//   - [GitDirty]: "true" if there were uncommitted changes
//   - [BuildTime]: UTC timestamp of the build
//   - [Version]: semantic version string, set manually for releases
//
// These default to "unknown" / "0.1.0-dev" when not injected, which is
// the case for development builds and test runs.
//
// [Current] snapshots the injected values together with the Go
// toolchain version and target platform as a [BuildInfo], which
// formats itself for humans ([BuildInfo.String] one line,
// [BuildInfo.Verbose] with toolchain detail) and serializes as JSON
// for the version command's --json output.
package version
