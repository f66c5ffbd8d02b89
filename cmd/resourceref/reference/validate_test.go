// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package reference

import (
	"bytes"
	"strings"
	"testing"
)

func TestValidateReferences(t *testing.T) {
	results, invalid := validateReferences([]string{
		"rr://PROD/billing/acme-corp",          // valid
		"rr://prod/billing/acme-corp",          // lowercase environment
		"rr://PROD/billing/acme-corp/invoices", // valid with property
		"not-a-reference",                      // garbage
	})

	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	if invalid != 2 {
		t.Errorf("invalid = %d, want 2", invalid)
	}

	wantValid := []bool{true, false, true, false}
	for i, result := range results {
		if result.Valid != wantValid[i] {
			t.Errorf("results[%d].Valid = %v, want %v (%s)", i, result.Valid, wantValid[i], result.Ref)
		}
	}
}

func TestValidateReferences_AllValid(t *testing.T) {
	results, invalid := validateReferences([]string{
		"rr://PROD/billing/acme-corp",
		"rr://STAGING/crm/globex/contacts",
	})
	if invalid != 0 {
		t.Errorf("invalid = %d, want 0", invalid)
	}
	for _, result := range results {
		if !result.Valid {
			t.Errorf("%s reported invalid, want valid", result.Ref)
		}
	}
}

func TestWriteValidationResults(t *testing.T) {
	results, _ := validateReferences([]string{
		"rr://PROD/billing/acme-corp",
		"rr://bad",
	})

	var buffer bytes.Buffer
	if err := writeValidationResults(&buffer, results); err != nil {
		t.Fatalf("writeValidationResults: %v", err)
	}
	output := buffer.String()

	if !strings.Contains(output, "rr://PROD/billing/acme-corp: valid") {
		t.Errorf("output missing valid line:\n%s", output)
	}
	if !strings.Contains(output, "rr://bad: invalid") {
		t.Errorf("output missing invalid line:\n%s", output)
	}
}
