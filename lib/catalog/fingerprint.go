// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/resourceref-project/resourceref/lib/codec"
)

// Fingerprint is a 32-byte BLAKE3 digest identifying a catalog's
// canonical content. Two catalogs with the same name, description, and
// entry set have the same fingerprint regardless of source format
// (YAML or JSONC) and declaration order.
type Fingerprint [32]byte

// catalogDomainKey is the 32-byte key for BLAKE3 keyed hashing of
// catalog content. A fixed constant: changing it invalidates every
// recorded fingerprint. The byte values are the ASCII encoding of the
// domain name, zero-padded to 32 bytes, so the key is readable in hex
// dumps (BLAKE3 keyed mode treats the key as an opaque 32-byte value).
var catalogDomainKey = [32]byte{
	'r', 'e', 's', 'o', 'u', 'r', 'c', 'e', 'r', 'e', 'f', '.', 'c', 'a', 't', 'a',
	'l', 'o', 'g', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Fingerprint computes the catalog-domain BLAKE3 keyed hash over the
// canonical CBOR encoding of the catalog.
func (c *Catalog) Fingerprint() (Fingerprint, error) {
	data, err := codec.Marshal(c.canonical())
	if err != nil {
		return Fingerprint{}, fmt.Errorf("encoding catalog %q for fingerprint: %w", c.name, err)
	}
	return keyedHash(catalogDomainKey, data), nil
}

// FormatFingerprint returns the hex-encoded string representation of a
// fingerprint. This is the canonical format for logs and CLI output.
func FormatFingerprint(fingerprint Fingerprint) string {
	return hex.EncodeToString(fingerprint[:])
}

// ParseFingerprint parses a 64-character hex string into a Fingerprint.
func ParseFingerprint(hexString string) (Fingerprint, error) {
	var fingerprint Fingerprint
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return fingerprint, fmt.Errorf("parsing catalog fingerprint: %w", err)
	}
	if len(decoded) != 32 {
		return fingerprint, fmt.Errorf("catalog fingerprint is %d bytes, want 32", len(decoded))
	}
	copy(fingerprint[:], decoded)
	return fingerprint, nil
}

// keyedHash computes the BLAKE3 keyed hash of data with the given key.
func keyedHash(key [32]byte, data []byte) Fingerprint {
	// NewKeyed requires exactly 32 bytes, which the array type
	// guarantees; the error is only returned for wrong key length.
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("catalog: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var fingerprint Fingerprint
	copy(fingerprint[:], hasher.Sum(nil))
	return fingerprint
}
