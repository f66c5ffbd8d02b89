// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete resourceref CLI command tree.
// It exists as its own package (rather than living in main) so that
// integration tests can construct and execute the tree in-process.
package commands

import (
	"fmt"

	catalogcmd "github.com/resourceref-project/resourceref/cmd/resourceref/catalog"
	"github.com/resourceref-project/resourceref/cmd/resourceref/cli"
	referencecmd "github.com/resourceref-project/resourceref/cmd/resourceref/reference"
	"github.com/resourceref-project/resourceref/lib/version"
)

// versionParams holds the parameters for the "version" command.
type versionParams struct {
	cli.JSONOutput
}

// Root builds and returns the complete resourceref CLI command tree.
func Root() *cli.Command {
	var params versionParams

	return &cli.Command{
		Name: "resourceref",
		Description: `resourceref: tooling for rr:// resource references.

Parse, validate, and build resource reference identifiers, and manage
catalog files that map references to owners and descriptions.`,
		Subcommands: []*cli.Command{
			referencecmd.Command(),
			catalogcmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Params:  func() any { return &params },
				Run: func(args []string) error {
					info := version.Current()
					if done, err := params.EmitJSON(info); done {
						return err
					}
					fmt.Printf("resourceref %s\n", info.Verbose())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Parse a reference into its components",
				Command:     "resourceref reference parse rr://PROD/billing/acme-corp/invoices/2026",
			},
			{
				Description: "Validate references piped from another tool",
				Command:     "grep -o 'rr://[^\"]*' deploy.log | resourceref reference validate",
			},
			{
				Description: "Build a reference from its parts",
				Command:     "resourceref reference build --environment PROD --application billing --customer acme-corp",
			},
			{
				Description: "Lint a catalog file",
				Command:     "resourceref catalog lint services.yaml",
			},
			{
				Description: "List catalog entries for one environment",
				Command:     "resourceref catalog list services.yaml --environment PROD",
			},
			{
				Description: "Pin a catalog's content fingerprint in CI",
				Command:     "resourceref catalog fingerprint services.yaml --expect $PINNED",
			},
		},
	}
}
