// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"io"
	"slices"
	"strings"

	"github.com/resourceref-project/resourceref/lib/codec"
)

// exportCatalog is the canonical wire form of a catalog. Entries are
// sorted by canonical reference value so that declaration order in the
// source file does not affect the encoding. References encode as CBOR
// text strings via encoding.TextMarshaler.
type exportCatalog struct {
	Catalog     string  `json:"catalog"`
	Description string  `json:"description,omitempty"`
	Entries     []Entry `json:"entries"`
}

// canonical returns the export form of the catalog. Deterministic CBOR
// over this value is both the export encoding and the fingerprint
// pre-image.
func (c *Catalog) canonical() exportCatalog {
	entries := slices.Clone(c.entries)
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Ref.Value(), b.Ref.Value())
	})
	return exportCatalog{
		Catalog:     c.name,
		Description: c.description,
		Entries:     entries,
	}
}

// EncodeCBOR writes the canonical CBOR encoding of the catalog to w.
// The bytes written are exactly the fingerprint pre-image: hashing
// them with the catalog domain key reproduces Fingerprint.
func (c *Catalog) EncodeCBOR(w io.Writer) error {
	return codec.NewEncoder(w).Encode(c.canonical())
}
