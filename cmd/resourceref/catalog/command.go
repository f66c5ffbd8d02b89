// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"github.com/resourceref-project/resourceref/cmd/resourceref/cli"
)

// Command returns the "catalog" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "catalog",
		Summary: "Lint, list, and fingerprint reference catalogs",
		Description: `Work with catalog files that map rr:// references to owners,
descriptions, and tags.

Catalogs are YAML or JSONC files; the format is chosen by extension.
Every reference in a catalog must parse and be unique. The fingerprint
commands operate on the catalog's canonical form (entries sorted by
reference value, encoded as deterministic CBOR), so formatting,
comments, and entry order never change the fingerprint.`,
		Subcommands: []*cli.Command{
			lintCommand(),
			listCommand(),
			fingerprintCommand(),
			exportCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Lint every catalog in a directory",
				Command:     "resourceref catalog lint catalogs/*.yaml",
			},
			{
				Description: "List one environment's entries",
				Command:     "resourceref catalog list services.yaml --environment PROD",
			},
			{
				Description: "Verify a pinned fingerprint in CI",
				Command:     "resourceref catalog fingerprint services.yaml --expect $PINNED",
			},
			{
				Description: "Inspect the canonical encoding",
				Command:     "resourceref catalog export services.yaml --diagnostic",
			},
		},
	}
}
