// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog implements the "resourceref catalog" subcommands for
// working with catalog files that map rr:// references to owners,
// descriptions, and tags.
//
// Catalog files are YAML (.yaml, .yml) or JSONC (.json, .jsonc); the
// format is chosen by extension. Both formats produce the same catalog,
// so teams can keep catalogs in whichever format their tooling prefers.
//
// Subcommands:
//
//   - lint: load catalog files and report structural problems
//     (malformed references, duplicates, missing name).
//   - list: print a catalog's entries, optionally filtered by
//     environment or application.
//   - fingerprint: compute the catalog's content fingerprint, with
//     --expect for pinning in CI.
//   - export: write the canonical CBOR encoding, the exact fingerprint
//     pre-image.
package catalog
