// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package reference

import (
	"github.com/resourceref-project/resourceref/cmd/resourceref/cli"
)

// Command returns the "reference" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "reference",
		Summary: "Parse, validate, and build rr:// references",
		Description: `Work with individual rr:// resource references.

A reference names a resource by environment, application, and customer,
with up to six optional property segments:

  rr://PROD/billing/acme-corp/invoices/2026

parse and validate read references from positional arguments or, when
none are given, from stdin one per line. build assembles a reference
from component flags the way the builder API does: case is normalized
but nothing is validated unless --check is set.`,
		Subcommands: []*cli.Command{
			parseCommand(),
			validateCommand(),
			buildCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Parse a reference into its components",
				Command:     "resourceref reference parse rr://PROD/billing/acme-corp/invoices/2026",
			},
			{
				Description: "Validate every reference in a file",
				Command:     "resourceref reference validate < refs.txt",
			},
			{
				Description: "Build and immediately check a reference",
				Command:     "resourceref reference build -e PROD -a billing -c acme-corp invoices 2026 --check",
			},
		},
	}
}
