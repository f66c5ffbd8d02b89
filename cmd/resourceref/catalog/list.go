// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/resourceref-project/resourceref/cmd/resourceref/cli"
	"github.com/resourceref-project/resourceref/lib/catalog"
)

// listParams holds the parameters for the "catalog list" command.
type listParams struct {
	cli.JSONOutput
	Environment string `json:"environment" flag:"environment" desc:"only entries in this environment (case-insensitive)"`
	Application string `json:"application" flag:"application" desc:"only entries for this application (case-insensitive)"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List the entries of a catalog file",
		Description: `Print a catalog's entries as an aligned table of reference, owner,
and description. --environment and --application narrow the listing;
both filters are case-insensitive and combine.`,
		Usage: "resourceref catalog list <file> [flags]",
		Examples: []cli.Example{
			{
				Description: "List everything",
				Command:     "resourceref catalog list services.yaml",
			},
			{
				Description: "Only production entries",
				Command:     "resourceref catalog list services.yaml --environment PROD",
			},
			{
				Description: "One application in one environment",
				Command:     "resourceref catalog list services.yaml --environment PROD --application billing",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: resourceref catalog list <file>")
			}

			c, err := catalog.ReadFile(args[0])
			if err != nil {
				return err
			}

			entries := filterEntries(c, params.Environment, params.Application)

			if done, err := params.EmitJSON(entries); done {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintf(os.Stderr, "No entries match in %s.\n", args[0])
				return nil
			}
			return writeEntryTable(os.Stdout, entries)
		},
	}
}

// filterEntries applies the optional environment and application
// filters. An empty filter matches everything.
func filterEntries(c *catalog.Catalog, environment, application string) []catalog.Entry {
	switch {
	case environment == "" && application == "":
		return c.Entries()
	case application == "":
		return c.ByEnvironment(environment)
	case environment == "":
		return c.ByApplication(application)
	}

	// Both filters set: apply the application filter to the
	// environment matches.
	app := strings.ToLower(application)
	var entries []catalog.Entry
	for _, entry := range c.ByEnvironment(environment) {
		if entry.Ref.Application() == app {
			entries = append(entries, entry)
		}
	}
	return entries
}

// writeEntryTable renders catalog entries as an aligned table.
func writeEntryTable(w io.Writer, entries []catalog.Entry) error {
	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "REFERENCE\tOWNER\tDESCRIPTION\n")
	for _, entry := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", entry.Ref.Value(), entry.Owner, entry.Description)
	}
	return tw.Flush()
}
