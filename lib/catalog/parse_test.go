// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/resourceref-project/resourceref/lib/resource"
)

const sampleYAML = `
catalog: billing
description: References owned by the billing team.
entries:
  - ref: rr://PROD/billing/acme-corp/invoices
    description: Invoice store for ACME.
    owner: team-billing
    tags: [invoices, acme]
  - ref: rr://STAGE/billing/acme-corp
    owner: team-billing
`

const sampleJSONC = `{
	// Billing team references.
	"catalog": "billing",
	"description": "References owned by the billing team.",
	"entries": [
		{
			"ref": "rr://PROD/billing/acme-corp/invoices",
			"description": "Invoice store for ACME.",
			"owner": "team-billing",
			"tags": ["invoices", "acme"],
		},
		/* no tags on the staging entry */
		{"ref": "rr://STAGE/billing/acme-corp", "owner": "team-billing"},
	],
}`

func TestParseYAML(t *testing.T) {
	c, err := ParseYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}

	if c.Name() != "billing" {
		t.Errorf("Name() = %q, want %q", c.Name(), "billing")
	}
	if c.Description() != "References owned by the billing team." {
		t.Errorf("Description() = %q", c.Description())
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	entries := c.Entries()
	if got, want := entries[0].Ref.Value(), "rr://PROD/billing/acme-corp/invoices"; got != want {
		t.Errorf("entry 0 ref = %q, want %q", got, want)
	}
	if got, want := entries[0].Owner, "team-billing"; got != want {
		t.Errorf("entry 0 owner = %q, want %q", got, want)
	}
	if !slices.Equal(entries[0].Tags, []string{"invoices", "acme"}) {
		t.Errorf("entry 0 tags = %q", entries[0].Tags)
	}
	if got, want := entries[1].Ref.Value(), "rr://STAGE/billing/acme-corp"; got != want {
		t.Errorf("entry 1 ref = %q, want %q", got, want)
	}
}

func TestParseJSONC(t *testing.T) {
	c, err := ParseJSONC([]byte(sampleJSONC))
	if err != nil {
		t.Fatalf("ParseJSONC: %v", err)
	}

	if c.Name() != "billing" {
		t.Errorf("Name() = %q, want %q", c.Name(), "billing")
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if got, want := c.Entries()[0].Ref.Environment(), "PROD"; got != want {
		t.Errorf("entry 0 environment = %q, want %q", got, want)
	}
}

// Loading fails on the first out-of-grammar entry and reports its
// index; the underlying InvalidFormatError stays reachable.
func TestParseInvalidEntry(t *testing.T) {
	data := []byte(`
catalog: broken
entries:
  - ref: rr://PROD/billing/acme-corp
  - ref: rr://prod/Billing/x
`)
	_, err := ParseYAML(data)
	if err == nil {
		t.Fatal("ParseYAML accepted an out-of-grammar entry")
	}
	if !strings.Contains(err.Error(), "entry 1") {
		t.Errorf("error %q does not name the failing entry", err)
	}
	if !errors.Is(err, resource.ErrInvalidFormat) {
		t.Errorf("errors.Is(err, resource.ErrInvalidFormat) = false for %v", err)
	}
	var formatErr *resource.InvalidFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("error chain has no *resource.InvalidFormatError: %v", err)
	}
	if formatErr.Input != "rr://prod/Billing/x" {
		t.Errorf("Input = %q, want the rejected string", formatErr.Input)
	}
}

func TestParseDuplicateEntry(t *testing.T) {
	data := []byte(`
catalog: duplicated
entries:
  - ref: rr://PROD/billing/acme-corp
  - ref: rr://STAGE/billing/acme-corp
  - ref: rr://PROD/billing/acme-corp
`)
	_, err := ParseYAML(data)
	if err == nil {
		t.Fatal("ParseYAML accepted a duplicate entry")
	}
	if !strings.Contains(err.Error(), "duplicate reference") {
		t.Errorf("error %q does not mention the duplicate", err)
	}
}

func TestParseMissingName(t *testing.T) {
	data := []byte(`
entries:
  - ref: rr://PROD/billing/acme-corp
`)
	if _, err := ParseYAML(data); err == nil {
		t.Error("ParseYAML accepted a catalog without a name")
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := ParseYAML([]byte("catalog: [unclosed")); err == nil {
		t.Error("ParseYAML accepted malformed YAML")
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "billing.yaml")
	if err := os.WriteFile(yamlPath, []byte(sampleYAML), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	jsoncPath := filepath.Join(dir, "billing.jsonc")
	if err := os.WriteFile(jsoncPath, []byte(sampleJSONC), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fromYAML, err := ReadFile(yamlPath)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", yamlPath, err)
	}
	fromJSONC, err := ReadFile(jsoncPath)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", jsoncPath, err)
	}

	if fromYAML.Len() != fromJSONC.Len() {
		t.Errorf("YAML and JSONC loads disagree: %d vs %d entries", fromYAML.Len(), fromJSONC.Len())
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := ReadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("ReadFile succeeded on a missing file")
	}

	tomlPath := filepath.Join(dir, "refs.toml")
	if err := os.WriteFile(tomlPath, []byte("catalog = \"x\""), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := ReadFile(tomlPath)
	if err == nil {
		t.Fatal("ReadFile accepted an unrecognized extension")
	}
	if !strings.Contains(err.Error(), ".toml") {
		t.Errorf("error %q does not name the extension", err)
	}
}
