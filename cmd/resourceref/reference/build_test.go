// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package reference

import (
	"strings"
	"testing"
)

func TestBuildReference(t *testing.T) {
	params := buildParams{
		Environment: "PROD",
		Application: "billing",
		Customer:    "acme-corp",
	}

	result, err := buildReference(params, []string{"invoices", "2026"})
	if err != nil {
		t.Fatalf("buildReference: %v", err)
	}
	if want := "rr://PROD/billing/acme-corp/invoices/2026"; result.Ref != want {
		t.Errorf("Ref = %q, want %q", result.Ref, want)
	}
	if !result.Valid {
		t.Error("Valid = false, want true")
	}
}

func TestBuildReference_NormalizesCase(t *testing.T) {
	params := buildParams{
		Environment: "prod",
		Application: "Billing",
		Customer:    "Acme_1",
	}

	result, err := buildReference(params, nil)
	if err != nil {
		t.Fatalf("buildReference: %v", err)
	}
	// Environment is uppercased, application lowercased, customer kept.
	if want := "rr://PROD/billing/Acme_1"; result.Ref != want {
		t.Errorf("Ref = %q, want %q", result.Ref, want)
	}
}

func TestBuildReference_MissingComponents(t *testing.T) {
	tests := []struct {
		name   string
		params buildParams
	}{
		{"no environment", buildParams{Application: "billing", Customer: "acme-corp"}},
		{"no application", buildParams{Environment: "PROD", Customer: "acme-corp"}},
		{"no customer", buildParams{Environment: "PROD", Application: "billing"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := buildReference(test.params, nil)
			if err == nil {
				t.Fatal("expected error for missing component, got nil")
			}
			if !strings.Contains(err.Error(), "required") {
				t.Errorf("error = %q, want to mention required flags", err.Error())
			}
		})
	}
}

func TestBuildReference_NoValidationWithoutCheck(t *testing.T) {
	// A one-letter customer fails the grammar, but build succeeds: the
	// builder performs no validation unless --check is set.
	params := buildParams{
		Environment: "PROD",
		Application: "billing",
		Customer:    "x",
	}

	result, err := buildReference(params, nil)
	if err != nil {
		t.Fatalf("buildReference: %v", err)
	}
	if result.Valid {
		t.Error("Valid = true, want false for one-letter customer")
	}
	if want := "rr://PROD/billing/x"; result.Ref != want {
		t.Errorf("Ref = %q, want %q", result.Ref, want)
	}
}

func TestBuildReference_CheckRejectsInvalid(t *testing.T) {
	params := buildParams{
		Environment: "PROD",
		Application: "billing",
		Customer:    "x",
		Check:       true,
	}

	result, err := buildReference(params, nil)
	if err == nil {
		t.Fatal("expected error with --check for invalid result, got nil")
	}
	if !strings.Contains(err.Error(), "rr://PROD/billing/x") {
		t.Errorf("error = %q, should name the built reference", err.Error())
	}
	// The result is still returned so callers can show what was built.
	if result.Ref != "rr://PROD/billing/x" {
		t.Errorf("Ref = %q, want %q", result.Ref, "rr://PROD/billing/x")
	}
}

func TestBuildReference_CheckAcceptsValid(t *testing.T) {
	params := buildParams{
		Environment: "PROD",
		Application: "billing",
		Customer:    "acme-corp",
		Check:       true,
	}

	if _, err := buildReference(params, []string{"invoices"}); err != nil {
		t.Fatalf("buildReference with --check: %v", err)
	}
}

func TestBuildReference_BeyondPropertyLimit(t *testing.T) {
	params := buildParams{
		Environment: "PROD",
		Application: "billing",
		Customer:    "acme-corp",
	}

	// Seven properties build fine but fail the grammar's limit of six.
	properties := []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"}
	result, err := buildReference(params, properties)
	if err != nil {
		t.Fatalf("buildReference: %v", err)
	}
	if result.Valid {
		t.Error("Valid = true, want false for seven properties")
	}
}
