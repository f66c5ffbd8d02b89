// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package reference

import (
	"strings"
	"testing"
)

func TestReadReferences_ArgsTakePrecedence(t *testing.T) {
	args := []string{"rr://PROD/billing/acme-corp", "rr://STAGING/crm/globex"}
	stdin := strings.NewReader("rr://DEV/iot/initech\n")

	got, err := readReferences(args, stdin)
	if err != nil {
		t.Fatalf("readReferences: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	if got[0] != args[0] || got[1] != args[1] {
		t.Errorf("candidates = %v, want %v", got, args)
	}
}

func TestReadReferences_Stdin(t *testing.T) {
	stdin := strings.NewReader("rr://PROD/billing/acme-corp\nrr://STAGING/crm/globex\n")

	got, err := readReferences(nil, stdin)
	if err != nil {
		t.Fatalf("readReferences: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	if got[0] != "rr://PROD/billing/acme-corp" {
		t.Errorf("candidates[0] = %q, want %q", got[0], "rr://PROD/billing/acme-corp")
	}
}

func TestReadReferences_SkipsCommentsAndBlanks(t *testing.T) {
	input := `
# production references
rr://PROD/billing/acme-corp

  # indented comment
  rr://PROD/crm/globex
`
	got, err := readReferences(nil, strings.NewReader(input))
	if err != nil {
		t.Fatalf("readReferences: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2: %v", len(got), got)
	}
	// Leading whitespace is trimmed from candidates.
	if got[1] != "rr://PROD/crm/globex" {
		t.Errorf("candidates[1] = %q, want %q", got[1], "rr://PROD/crm/globex")
	}
}

func TestReadReferences_EmptyInput(t *testing.T) {
	_, err := readReferences(nil, strings.NewReader("\n# only a comment\n"))
	if err == nil {
		t.Fatal("expected error for empty input, got nil")
	}
	if !strings.Contains(err.Error(), "no references given") {
		t.Errorf("error = %q, want to contain \"no references given\"", err.Error())
	}
}
