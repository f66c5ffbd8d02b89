// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/resourceref-project/resourceref/cmd/resourceref/cli"
	"github.com/resourceref-project/resourceref/lib/catalog"
)

// lintParams holds the parameters for the "catalog lint" command.
type lintParams struct {
	cli.JSONOutput
}

// lintResult is the JSON output row for catalog lint.
type lintResult struct {
	File    string `json:"file"`
	Valid   bool   `json:"valid"`
	Entries int    `json:"entries"`
	Error   string `json:"error,omitempty"`
}

func lintCommand() *cli.Command {
	var params lintParams

	return &cli.Command{
		Name:    "lint",
		Summary: "Check catalog files for structural problems",
		Description: `Load each catalog file and report problems: unreadable files,
malformed YAML or JSONC, references that fail the rr:// grammar,
duplicate references, or a missing catalog name.

Prints one status line per file and exits 1 if any file has problems,
so the command works as a pre-commit or CI gate.`,
		Usage: "resourceref catalog lint <file>... [flags]",
		Examples: []cli.Example{
			{
				Description: "Lint a single catalog",
				Command:     "resourceref catalog lint services.yaml",
			},
			{
				Description: "Lint every catalog before commit",
				Command:     "resourceref catalog lint catalogs/*.yaml catalogs/*.jsonc",
			},
			{
				Description: "Machine-readable results",
				Command:     "resourceref catalog lint services.yaml --json",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("usage: resourceref catalog lint <file>...")
			}

			results, failures := lintFiles(args)

			if done, err := params.EmitJSON(results); done {
				if err != nil {
					return err
				}
			} else if err := writeLintResults(os.Stdout, results); err != nil {
				return err
			}

			if failures > 0 {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// lintFiles loads each catalog file and records the outcome. Returns
// one result per file plus the number of failures.
func lintFiles(paths []string) ([]lintResult, int) {
	results := make([]lintResult, 0, len(paths))
	failures := 0
	for _, path := range paths {
		c, err := catalog.ReadFile(path)
		if err != nil {
			failures++
			results = append(results, lintResult{File: path, Error: err.Error()})
			continue
		}
		results = append(results, lintResult{File: path, Valid: true, Entries: c.Len()})
	}
	return results, failures
}

// writeLintResults prints one status line per file.
func writeLintResults(w io.Writer, results []lintResult) error {
	for _, result := range results {
		var err error
		if result.Valid {
			_, err = fmt.Fprintf(w, "%s: valid (%d entries)\n", result.File, result.Entries)
		} else {
			_, err = fmt.Fprintf(w, "%s: %s\n", result.File, result.Error)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
