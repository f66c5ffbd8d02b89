// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package reference

import (
	"fmt"
	"os"

	"github.com/resourceref-project/resourceref/cmd/resourceref/cli"
	"github.com/resourceref-project/resourceref/lib/resource"
)

// buildParams holds the parameters for the "reference build" command.
type buildParams struct {
	cli.JSONOutput
	Environment string `json:"environment" flag:"environment,e" desc:"deployment environment (stored uppercase)"`
	Application string `json:"application" flag:"application,a" desc:"application name (stored lowercase)"`
	Customer    string `json:"customer"    flag:"customer,c"    desc:"customer identifier (stored as given)"`
	Check       bool   `json:"check"       flag:"check"         desc:"fail unless the result satisfies the reference grammar"`
}

// builtReference is the JSON output for reference build.
type builtReference struct {
	Ref   string `json:"ref"`
	Valid bool   `json:"valid"`
}

func buildCommand() *cli.Command {
	var params buildParams

	return &cli.Command{
		Name:    "build",
		Summary: "Assemble a reference from its components",
		Description: `Assemble an rr:// reference from --environment, --application, and
--customer, with any positional arguments appended as property
segments.

Like the builder API, this normalizes case (environment uppercased,
application lowercased) but validates nothing else: it will happily
produce a value the parser rejects, such as a one-letter customer.
Use --check to enforce the grammar on the result, or pipe the output
through "resourceref reference validate".`,
		Usage: "resourceref reference build -e <env> -a <app> -c <customer> [property...] [flags]",
		Examples: []cli.Example{
			{
				Description: "Build a minimal reference",
				Command:     "resourceref reference build -e PROD -a billing -c acme-corp",
			},
			{
				Description: "Append property segments",
				Command:     "resourceref reference build -e PROD -a billing -c acme-corp invoices 2026",
			},
			{
				Description: "Reject results that do not parse",
				Command:     "resourceref reference build -e prod -a Billing -c x --check",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			result, err := buildReference(params, args)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(result); done {
				return err
			}
			fmt.Fprintln(os.Stdout, result.Ref)
			return nil
		},
	}
}

// buildReference assembles a reference from the component flags and
// property args. When check is set, a result that fails the reference
// grammar is an error.
func buildReference(params buildParams, properties []string) (builtReference, error) {
	if params.Environment == "" || params.Application == "" || params.Customer == "" {
		return builtReference{}, fmt.Errorf("--environment, --application, and --customer are all required")
	}

	ref := resource.NewBuilder(params.Application, params.Environment, params.Customer).
		WithProperties(properties...).
		Build()

	result := builtReference{
		Ref:   ref.Value(),
		Valid: resource.IsValid(ref.Value()),
	}
	if params.Check && !result.Valid {
		return result, fmt.Errorf("built reference %q does not satisfy the reference grammar", result.Ref)
	}
	return result, nil
}
