// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"os"

	"github.com/resourceref-project/resourceref/cmd/resourceref/cli"
	"github.com/resourceref-project/resourceref/lib/catalog"
)

// fingerprintParams holds the parameters for the "catalog fingerprint" command.
type fingerprintParams struct {
	cli.JSONOutput
	Expect string `json:"expect" flag:"expect" desc:"fail unless the fingerprint equals this hex value"`
}

// fingerprintResult is the JSON output for catalog fingerprint. Match
// is present only when --expect was given.
type fingerprintResult struct {
	File        string `json:"file"`
	Catalog     string `json:"catalog"`
	Fingerprint string `json:"fingerprint"`
	Match       *bool  `json:"match,omitempty"`
}

func fingerprintCommand() *cli.Command {
	var params fingerprintParams

	return &cli.Command{
		Name:    "fingerprint",
		Summary: "Compute a catalog's content fingerprint",
		Description: `Compute the keyed BLAKE3 fingerprint of a catalog's canonical form
and print it as 64 hex characters.

The fingerprint depends only on catalog content: two files with the
same name and entries fingerprint identically regardless of format
(YAML vs JSONC), comments, or entry order. With --expect, compares
against a pinned value and exits 1 on mismatch.`,
		Usage: "resourceref catalog fingerprint <file> [flags]",
		Examples: []cli.Example{
			{
				Description: "Print the fingerprint",
				Command:     "resourceref catalog fingerprint services.yaml",
			},
			{
				Description: "Verify against a pinned value in CI",
				Command:     "resourceref catalog fingerprint services.yaml --expect $PINNED",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: resourceref catalog fingerprint <file>")
			}

			result, match, err := fingerprintFile(args[0], params.Expect)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(result); done {
				if err != nil {
					return err
				}
			} else if match {
				fmt.Fprintln(os.Stdout, result.Fingerprint)
			} else {
				fmt.Fprintf(os.Stderr, "fingerprint mismatch for %s:\n  have %s\n  want %s\n",
					result.File, result.Fingerprint, params.Expect)
			}

			if !match {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// fingerprintFile computes the fingerprint of the catalog at path and,
// when expect is non-empty, compares against it. The returned bool is
// false only on an expectation mismatch.
func fingerprintFile(path, expect string) (fingerprintResult, bool, error) {
	c, err := catalog.ReadFile(path)
	if err != nil {
		return fingerprintResult{}, false, err
	}
	fingerprint, err := c.Fingerprint()
	if err != nil {
		return fingerprintResult{}, false, err
	}

	result := fingerprintResult{
		File:        path,
		Catalog:     c.Name(),
		Fingerprint: catalog.FormatFingerprint(fingerprint),
	}
	if expect == "" {
		return result, true, nil
	}

	expected, err := catalog.ParseFingerprint(expect)
	if err != nil {
		return fingerprintResult{}, false, fmt.Errorf("--expect: %w", err)
	}
	match := fingerprint == expected
	result.Match = &match
	return result, match, nil
}
