// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

// Package resource provides the Reference value type: a strongly
// typed, immutable representation of an rr:// resource reference.
//
// A reference names a resource by environment, application, customer,
// and up to six ordered properties:
//
//	rr://PROD/billing/acme-corp/invoices/2026
//
// Parse and IsValid enforce the full grammar. The Builder performs no
// grammar validation: construction trusts the caller and normalizes
// only letter case. The asymmetry is deliberate (see NewBuilder); run
// builder output through IsValid when it must be parseable.
//
// Once constructed, a Reference is immutable. Accessors return the
// normalized components, Properties returns a copy, and the canonical
// string form (environment uppercased, application lowercased) is
// pre-computed at construction.
//
// JSON and CBOR marshaling use the canonical form via
// encoding.TextMarshaler.
package resource
