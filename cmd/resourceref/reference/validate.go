// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package reference

import (
	"fmt"
	"io"
	"os"

	"github.com/resourceref-project/resourceref/cmd/resourceref/cli"
	"github.com/resourceref-project/resourceref/lib/resource"
)

// validateParams holds the parameters for the "reference validate" command.
type validateParams struct {
	cli.JSONOutput
}

// validationResult is the JSON output row for reference validate.
type validationResult struct {
	Ref   string `json:"ref"`
	Valid bool   `json:"valid"`
}

func validateCommand() *cli.Command {
	var params validateParams

	return &cli.Command{
		Name:    "validate",
		Summary: "Check candidates against the reference grammar",
		Description: `Check each candidate against the rr:// reference grammar and report
one "<ref>: valid" or "<ref>: invalid" line per candidate. Exits 0
when every candidate is valid and 1 otherwise, so the command works
as a gate in scripts and CI.

Unlike parse, validate keeps going after an invalid candidate: every
candidate is checked and reported.

References are taken from positional arguments or, when none are
given, read from stdin one per line.`,
		Usage: "resourceref reference validate [<ref>...] [flags]",
		Examples: []cli.Example{
			{
				Description: "Validate a single reference",
				Command:     "resourceref reference validate rr://PROD/billing/acme-corp",
			},
			{
				Description: "Gate a deploy on every reference in a manifest",
				Command:     "resourceref reference validate < manifest-refs.txt",
			},
			{
				Description: "Machine-readable per-candidate results",
				Command:     "resourceref reference validate rr://PROD/billing/x --json",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			candidates, err := readReferences(args, os.Stdin)
			if err != nil {
				return err
			}

			results, invalid := validateReferences(candidates)

			if done, err := params.EmitJSON(results); done {
				if err != nil {
					return err
				}
			} else if err := writeValidationResults(os.Stdout, results); err != nil {
				return err
			}

			if invalid > 0 {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// validateReferences checks each candidate against the reference
// grammar. Returns one result per candidate plus the number of invalid
// candidates.
func validateReferences(candidates []string) ([]validationResult, int) {
	results := make([]validationResult, 0, len(candidates))
	invalid := 0
	for _, candidate := range candidates {
		valid := resource.IsValid(candidate)
		if !valid {
			invalid++
		}
		results = append(results, validationResult{Ref: candidate, Valid: valid})
	}
	return results, invalid
}

// writeValidationResults prints one status line per candidate.
func writeValidationResults(w io.Writer, results []validationResult) error {
	for _, result := range results {
		status := "valid"
		if !result.Valid {
			status = "invalid"
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", result.Ref, status); err != nil {
			return err
		}
	}
	return nil
}
