// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

// Resourceref is the developer CLI for rr:// resource references. It
// provides subcommands for working with individual references (parse,
// validate, build) and with catalog files that declare the references
// a team owns (lint, list, fingerprint, export).
package main
