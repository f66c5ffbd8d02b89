// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration.
//
// The project uses its serialization formats with a clear boundary:
//
//   - YAML and JSONC for human-edited inputs (catalog files), JSON for
//     CLI --json output.
//   - CBOR for canonical machine encodings: catalog fingerprint input
//     and catalog export.
//
// This package provides the shared CBOR encoding and decoding modes so
// that every package encodes identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding
// (RFC 8949 §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces identical
// bytes, so a catalog fingerprint computed here matches one computed
// anywhere else.
//
// For buffer-oriented operations (fingerprint input):
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (catalog export):
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
//
// Types that serve both JSON and CBOR carry `json` struct tags only:
// fxamacker/cbor v2 reads `json` tags as fallback when `cbor` tags are
// absent, so a single tag controls field naming and omitempty for both
// formats. resource.Reference fields need no tags at all; they encode
// as text strings through encoding.TextMarshaler in either format.
package codec
