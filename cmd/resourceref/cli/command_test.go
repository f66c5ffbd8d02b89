// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "resourceref",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(args []string) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "catalog",
				Run: func(args []string) error {
					called = "catalog"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"catalog"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "catalog" {
		t.Errorf("dispatched to %q, want %q", called, "catalog")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "resourceref",
		Subcommands: []*Command{
			{
				Name: "catalog",
				Subcommands: []*Command{
					{
						Name: "lint",
						Run: func(args []string) error {
							called = "catalog lint"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"catalog", "lint", "services.yaml"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "catalog lint" {
		t.Errorf("dispatched to %q, want %q", called, "catalog lint")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "services.yaml" {
		t.Errorf("args = %v, want [services.yaml]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	type parseParams struct {
		Environment string `flag:"environment" desc:"environment filter" default:"PROD"`
	}

	var params parseParams
	var target string

	command := &Command{
		Name:   "list",
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute([]string{"--environment", "STAGING", "services.yaml"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if params.Environment != "STAGING" {
		t.Errorf("Environment = %q, want %q", params.Environment, "STAGING")
	}
	if target != "services.yaml" {
		t.Errorf("target = %q, want %q", target, "services.yaml")
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	type listParams struct {
		Environment string `flag:"environment" desc:"environment filter"`
		Application string `flag:"application" desc:"application filter"`
	}

	var params listParams
	command := &Command{
		Name:   "list",
		Params: func() any { return &params },
		Run:    func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--enviroment", "PROD"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --environment") {
		t.Errorf("error = %q, want suggestion for '--environment'", errStr)
	}
	// Suggestion should be on the same line as the error, not buried.
	if !strings.Contains(errStr, "enviroment") {
		t.Errorf("error = %q, should mention the bad flag", errStr)
	}
	// Should include a pointer to --help.
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	type listParams struct {
		Environment string `flag:"environment" desc:"environment filter"`
	}

	var params listParams
	command := &Command{
		Name:   "list",
		Params: func() any { return &params },
		Run:    func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--zzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("error = %q, should point to --help", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "resourceref",
		Subcommands: []*Command{
			{Name: "reference"},
			{Name: "catalog"},
			{Name: "version"},
		},
	}

	err := root.Execute([]string{"catalg"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), "did you mean \"catalog\"") {
		t.Errorf("error = %q, want suggestion for 'catalog'", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "resourceref",
		Subcommands: []*Command{
			{Name: "reference"},
			{Name: "catalog"},
		},
	}

	err := root.Execute([]string{"zzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			root := &Command{
				Name:    "resourceref",
				Summary: "Resource reference tooling",
				Subcommands: []*Command{
					{Name: "catalog", Summary: "Catalog operations"},
				},
			}

			err := root.Execute([]string{helpArg})
			if err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
		})
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	root := &Command{
		Name: "resourceref",
		Subcommands: []*Command{
			{Name: "catalog", Summary: "Catalog operations"},
		},
	}

	err := root.Execute([]string{})
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing subcommand")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	command := &Command{
		Name:        "resourceref",
		Description: "Parse, build, and catalog resource references.",
		Subcommands: []*Command{
			{Name: "reference", Summary: "Parse, validate, and build references"},
			{Name: "catalog", Summary: "Lint and fingerprint catalog files"},
			{Name: "version", Summary: "Print version information"},
		},
		Examples: []Example{
			{
				Description: "Parse a reference into its components",
				Command:     "resourceref reference parse rr://PROD/billing/acme-corp",
			},
			{
				Description: "Lint a catalog file",
				Command:     "resourceref catalog lint services.yaml",
			},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	// Verify structural elements are present.
	for _, want := range []string{
		"Parse, build, and catalog resource references.",
		"Usage:",
		"resourceref <command> [flags]",
		"Commands:",
		"reference",
		"Parse, validate, and build references",
		"catalog",
		"Lint and fingerprint catalog files",
		"Examples:",
		"resourceref reference parse rr://PROD/billing/acme-corp",
		"resourceref catalog lint",
		"Run 'resourceref <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_PrintHelp_WithFlags(t *testing.T) {
	type listParams struct {
		Environment string `flag:"environment" desc:"only entries in this environment"`
		Application string `flag:"application" desc:"only entries for this application"`
	}

	var params listParams
	command := &Command{
		Name:    "list",
		Summary: "List catalog entries",
		Usage:   "resourceref catalog list <file> [flags]",
		Params:  func() any { return &params },
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"resourceref catalog list <file> [flags]",
		"Flags:",
		"environment",
		"application",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "resourceref"}
	catalog := &Command{Name: "catalog", parent: root}
	lint := &Command{Name: "lint", parent: catalog}

	if got := root.fullName(); got != "resourceref" {
		t.Errorf("root.fullName() = %q, want %q", got, "resourceref")
	}
	if got := catalog.fullName(); got != "resourceref catalog" {
		t.Errorf("catalog.fullName() = %q, want %q", got, "resourceref catalog")
	}
	if got := lint.fullName(); got != "resourceref catalog lint" {
		t.Errorf("lint.fullName() = %q, want %q", got, "resourceref catalog lint")
	}
}
