// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

// Package reference implements the "resourceref reference" subcommands
// for working with individual rr:// references.
//
// Subcommands:
//
//   - parse: split references into environment, application, customer,
//     and property segments.
//   - validate: check candidates against the reference grammar, exiting
//     1 if any fail.
//   - build: assemble a reference from component flags without
//     validation, mirroring the builder API.
//
// parse and validate accept references as positional arguments or, when
// none are given, from stdin one per line. Blank lines and '#' comments
// are skipped, so a file of references can be piped in directly.
package reference
