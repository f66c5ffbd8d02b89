// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package resource

// Builder accumulates reference components for programmatic
// construction. It is a short-lived, single-goroutine accumulator:
// make one with NewBuilder, append properties, call Build once.
type Builder struct {
	environment string
	application string
	customer    string
	properties  []string
}

// NewBuilder starts a Builder from the three mandatory components.
// Note the argument order: application first, then environment, then
// customer.
//
// Neither NewBuilder nor Build checks the components against the
// reference grammar. Parsing is strict; construction trusts the
// caller. The asymmetry is deliberate and relied upon: callers build
// out-of-grammar references for internal use, and the only
// normalization applied is letter case (environment uppercased,
// application lowercased) when Build assembles the Reference. Use
// IsValid on the built value when it must be parseable.
func NewBuilder(application, environment, customer string) *Builder {
	return &Builder{
		environment: environment,
		application: application,
		customer:    customer,
	}
}

// WithProperties appends the given property segments in order and
// returns the Builder for chaining. The input slice is copied; later
// mutation of it does not affect the Builder.
func (b *Builder) WithProperties(properties ...string) *Builder {
	b.properties = append(b.properties, properties...)
	return b
}

// AddProperty appends a single property segment and returns the
// Builder for chaining.
func (b *Builder) AddProperty(property string) *Builder {
	b.properties = append(b.properties, property)
	return b
}

// Build assembles the immutable Reference: environment uppercased,
// application lowercased, customer and properties taken as given. No
// grammar validation is performed (see NewBuilder). The Builder may
// keep accumulating afterwards; the built Reference is unaffected.
func (b *Builder) Build() Reference {
	return newReference(b.environment, b.application, b.customer, b.properties)
}
