// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the resourceref CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a parameter struct factory, and a
// Run function. Commands are assembled into a tree in cmd/resourceref/commands
// and dispatched via [Command.Execute], which handles flag parsing,
// subcommand routing, and structured help output with examples.
//
// Flags are declared as struct tags on a command's parameter struct and
// bound via [BindFlags]; see that function for the tag grammar. Embedding
// [JSONOutput] in a parameter struct adds the conventional --json flag
// plus the [JSONOutput.EmitJSON] helper for machine-readable output.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
package cli
