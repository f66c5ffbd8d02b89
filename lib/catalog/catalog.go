// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog loads and validates resource reference catalogs.
//
// A catalog declares the rr:// references a team owns, authored as
// YAML or as JSONC (JSON extended with comments and trailing commas):
//
//	catalog: billing
//	description: References owned by the billing team.
//	entries:
//	  - ref: rr://PROD/billing/acme-corp/invoices
//	    owner: team-billing
//	    tags: [invoices]
//	  - ref: rr://STAGE/billing/acme-corp
//
// Loading parses every ref through the reference grammar and rejects
// the catalog on the first invalid or duplicate entry. A loaded
// Catalog is read-only: accessors return copies.
//
// Catalogs have a canonical CBOR form (entries sorted by canonical
// reference value, deterministically encoded) used for export and as
// the pre-image of the BLAKE3 fingerprint that identifies catalog
// content.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/resourceref-project/resourceref/lib/resource"
)

// Entry is one declared reference with its metadata.
type Entry struct {
	// Ref is the declared reference.
	Ref resource.Reference `json:"ref" yaml:"ref"`

	// Description says what the referenced resource is.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Owner names the team or system responsible for the resource.
	Owner string `json:"owner,omitempty" yaml:"owner,omitempty"`

	// Tags are free-form labels for grouping and search.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Catalog is a validated, read-only set of reference entries. Build
// one with New or by loading a file through ReadFile, ParseYAML, or
// ParseJSONC.
type Catalog struct {
	name        string
	description string
	entries     []Entry

	// byValue maps canonical reference values to entries indices.
	byValue map[string]int
}

// New builds a Catalog from already-constructed entries. The name must
// be non-empty, every entry must carry a non-zero reference, and no
// two entries may share a canonical reference value.
//
// References are not re-checked against the grammar: entries built
// programmatically (rather than parsed) are trusted, matching the
// construction contract of resource.Reference itself. File loading
// always goes through resource.Parse and cannot introduce
// out-of-grammar entries.
func New(name, description string, entries []Entry) (*Catalog, error) {
	if name == "" {
		return nil, fmt.Errorf("catalog name is empty")
	}

	cloned := slices.Clone(entries)
	byValue := make(map[string]int, len(cloned))
	for i, entry := range cloned {
		if entry.Ref.IsZero() {
			return nil, fmt.Errorf("entry %d: reference is unset", i)
		}
		value := entry.Ref.Value()
		if previous, ok := byValue[value]; ok {
			return nil, fmt.Errorf("entry %d: duplicate reference %s (first declared at entry %d)", i, value, previous)
		}
		byValue[value] = i
	}

	return &Catalog{
		name:        name,
		description: description,
		entries:     cloned,
		byValue:     byValue,
	}, nil
}

// Name returns the catalog name.
func (c *Catalog) Name() string { return c.name }

// Description returns the catalog description, possibly empty.
func (c *Catalog) Description() string { return c.description }

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Entries returns the entries in declaration order as a copy; mutating
// the returned slice does not affect the Catalog.
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Lookup returns the entry declaring ref, matched by canonical value.
func (c *Catalog) Lookup(ref resource.Reference) (Entry, bool) {
	i, ok := c.byValue[ref.Value()]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// ByEnvironment returns the entries whose reference environment equals
// env. The argument is uppercased first, the same normalization a
// Reference applies, so ByEnvironment("prod") matches rr://PROD/...
func (c *Catalog) ByEnvironment(env string) []Entry {
	env = strings.ToUpper(env)
	var matched []Entry
	for _, entry := range c.entries {
		if entry.Ref.Environment() == env {
			matched = append(matched, entry)
		}
	}
	return matched
}

// ByApplication returns the entries whose reference application equals
// app, lowercased first per Reference normalization.
func (c *Catalog) ByApplication(app string) []Entry {
	app = strings.ToLower(app)
	var matched []Entry
	for _, entry := range c.entries {
		if entry.Ref.Application() == app {
			matched = append(matched, entry)
		}
	}
	return matched
}
