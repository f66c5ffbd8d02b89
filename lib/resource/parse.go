// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"fmt"
	"regexp"
	"strings"
)

// referencePattern is the reference grammar, anchored at both ends:
// the rr:// prefix, an environment of 2+ uppercase letters, an
// application of 2+ lowercase letters, a customer of 3+ characters
// from [A-Za-z0-9_-], and 0 to MaxProperties property segments of 2+
// characters each from [A-Za-z0-9-] (no underscore, unlike customer).
// The property segments are captured as one group and split
// afterwards.
var referencePattern = regexp.MustCompile(fmt.Sprintf(
	`^rr://([A-Z]{2,})/([a-z]{2,})/([A-Za-z0-9_-]{3,})((?:/[A-Za-z0-9-]{2,}){0,%d})$`, MaxProperties))

// IsValid reports whether candidate is a grammatically valid resource
// reference string. The whole string must match; partial matches and
// trailing garbage are rejected. The empty string is not valid.
func IsValid(candidate string) bool {
	return referencePattern.MatchString(candidate)
}

// Parse validates candidate against the reference grammar and returns
// the structured Reference. On mismatch it returns an
// *InvalidFormatError carrying the rejected string; errors.Is with
// ErrInvalidFormat matches it.
func Parse(candidate string) (Reference, error) {
	groups := referencePattern.FindStringSubmatch(candidate)
	if groups == nil {
		return Reference{}, &InvalidFormatError{Input: candidate}
	}
	// The captured properties group is either empty or "/p1/p2/...".
	// An empty group means zero properties; splitting it would yield
	// one empty segment.
	var properties []string
	if groups[4] != "" {
		properties = strings.Split(strings.TrimPrefix(groups[4], "/"), "/")
	}
	return newReference(groups[1], groups[2], groups[3], properties), nil
}

// MustParse is like Parse but panics on error. Use in tests and static
// initialization where the input is known-valid.
func MustParse(candidate string) Reference {
	r, err := Parse(candidate)
	if err != nil {
		panic(fmt.Sprintf("resource.MustParse(%q): %v", candidate, err))
	}
	return r
}
