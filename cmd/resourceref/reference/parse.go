// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package reference

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/resourceref-project/resourceref/cmd/resourceref/cli"
	"github.com/resourceref-project/resourceref/lib/resource"
)

// parseParams holds the parameters for the "reference parse" command.
type parseParams struct {
	cli.JSONOutput
}

// parsedReference is the JSON output row for reference parse.
type parsedReference struct {
	Ref         string   `json:"ref"`
	Environment string   `json:"environment"`
	Application string   `json:"application"`
	Customer    string   `json:"customer"`
	Properties  []string `json:"properties"`
}

func parseCommand() *cli.Command {
	var params parseParams

	return &cli.Command{
		Name:    "parse",
		Summary: "Split references into their components",
		Description: `Parse one or more rr:// references and print their environment,
application, customer, and property segments. Fails on the first
reference that does not match the grammar.

References are taken from positional arguments or, when none are
given, read from stdin one per line.`,
		Usage: "resourceref reference parse [<ref>...] [flags]",
		Examples: []cli.Example{
			{
				Description: "Parse a single reference",
				Command:     "resourceref reference parse rr://PROD/billing/acme-corp/invoices/2026",
			},
			{
				Description: "Parse as JSON for scripting",
				Command:     "resourceref reference parse rr://STAGING/crm/globex --json",
			},
			{
				Description: "Parse references extracted from a log",
				Command:     "grep -o 'rr://[^ ]*' deploy.log | resourceref reference parse",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			candidates, err := readReferences(args, os.Stdin)
			if err != nil {
				return err
			}

			parsed, err := parseReferences(candidates)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(parsed); done {
				return err
			}
			return writeParsedTable(os.Stdout, parsed)
		},
	}
}

// parseReferences parses each candidate, failing on the first one that
// does not match the reference grammar.
func parseReferences(candidates []string) ([]parsedReference, error) {
	results := make([]parsedReference, 0, len(candidates))
	for _, candidate := range candidates {
		ref, err := resource.Parse(candidate)
		if err != nil {
			return nil, err
		}

		// Empty rather than nil so JSON shows [] for references
		// without properties.
		properties := ref.Properties()
		if properties == nil {
			properties = []string{}
		}

		results = append(results, parsedReference{
			Ref:         ref.Value(),
			Environment: ref.Environment(),
			Application: ref.Application(),
			Customer:    ref.Customer(),
			Properties:  properties,
		})
	}
	return results, nil
}

// writeParsedTable renders parsed references as an aligned table, one
// row per reference.
func writeParsedTable(w io.Writer, parsed []parsedReference) error {
	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "ENVIRONMENT\tAPPLICATION\tCUSTOMER\tPROPERTIES\n")
	for _, p := range parsed {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			p.Environment, p.Application, p.Customer, strings.Join(p.Properties, "/"))
	}
	return tw.Flush()
}
