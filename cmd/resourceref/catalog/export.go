// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"bytes"
	"fmt"
	"os"

	"github.com/resourceref-project/resourceref/cmd/resourceref/cli"
	"github.com/resourceref-project/resourceref/lib/catalog"
	"github.com/resourceref-project/resourceref/lib/codec"
)

// exportParams holds the parameters for the "catalog export" command.
type exportParams struct {
	Output     string `json:"output"     flag:"output,o"   desc:"write the encoding to this file instead of stdout"`
	Diagnostic bool   `json:"diagnostic" flag:"diagnostic" desc:"print diagnostic notation instead of raw bytes"`
}

func exportCommand() *cli.Command {
	var params exportParams

	return &cli.Command{
		Name:    "export",
		Summary: "Write a catalog's canonical CBOR encoding",
		Description: `Encode a catalog as canonical CBOR: entries sorted by reference
value, encoded with Core Deterministic Encoding. The bytes written are
exactly the fingerprint pre-image, so two catalogs with equal exports
have equal fingerprints.

With --diagnostic, prints the encoding in RFC 8949 Extended Diagnostic
Notation instead of raw bytes, for human inspection.`,
		Usage: "resourceref catalog export <file> [flags]",
		Examples: []cli.Example{
			{
				Description: "Export to a file",
				Command:     "resourceref catalog export services.yaml -o services.cbor",
			},
			{
				Description: "Inspect the canonical form",
				Command:     "resourceref catalog export services.yaml --diagnostic",
			},
			{
				Description: "Diff two catalogs by canonical content",
				Command:     "diff <(resourceref catalog export a.yaml --diagnostic) <(resourceref catalog export b.jsonc --diagnostic)",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: resourceref catalog export <file>")
			}

			data, err := exportFile(args[0])
			if err != nil {
				return err
			}

			if params.Diagnostic {
				notation, err := codec.Diagnose(data)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, notation)
				return nil
			}

			if params.Output != "" {
				if err := os.WriteFile(params.Output, data, 0644); err != nil {
					return fmt.Errorf("write %s: %w", params.Output, err)
				}
				logger := cli.NewCommandLogger().With("command", "catalog/export", "catalog", args[0])
				logger.Info("wrote canonical encoding", "output", params.Output, "bytes", len(data))
				return nil
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}
}

// exportFile loads the catalog at path and returns its canonical CBOR
// encoding.
func exportFile(path string) ([]byte, error) {
	c, err := catalog.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var buffer bytes.Buffer
	if err := c.EncodeCBOR(&buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
