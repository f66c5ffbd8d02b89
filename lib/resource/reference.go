// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"slices"
	"strings"
)

// Scheme is the prefix of every resource reference string.
const Scheme = "rr://"

// MaxProperties is the largest number of property segments the
// grammar admits.
const MaxProperties = 6

// Reference is a structured rr:// resource identifier: an environment,
// an application, a customer, and up to six ordered properties.
//
// Reference is an immutable value type. The zero value is not a valid
// reference; use IsZero to check. Because a Reference holds a property
// slice it is not comparable with ==; use Equal.
type Reference struct {
	environment string
	application string
	customer    string
	properties  []string
	value       string
}

// newReference assembles a Reference from raw components, normalizing
// the environment to uppercase and the application to lowercase, and
// pre-computes the canonical string. Components are not checked
// against the grammar; both Parse (which has already matched) and
// Build (which never validates) funnel through here.
func newReference(environment, application, customer string, properties []string) Reference {
	environment = strings.ToUpper(environment)
	application = strings.ToLower(application)

	var value strings.Builder
	value.WriteString(Scheme)
	value.WriteString(environment)
	value.WriteByte('/')
	value.WriteString(application)
	value.WriteByte('/')
	value.WriteString(customer)
	for _, property := range properties {
		value.WriteByte('/')
		value.WriteString(property)
	}

	return Reference{
		environment: environment,
		application: application,
		customer:    customer,
		properties:  slices.Clone(properties),
		value:       value.String(),
	}
}

// Environment returns the environment component, uppercased.
func (r Reference) Environment() string { return r.environment }

// Application returns the application component, lowercased.
func (r Reference) Application() string { return r.application }

// Customer returns the customer component exactly as constructed.
func (r Reference) Customer() string { return r.customer }

// Properties returns the ordered property segments as a copy; mutating
// the result does not affect the Reference. A reference with zero
// properties returns a nil slice, never a single empty segment.
func (r Reference) Properties() []string {
	return slices.Clone(r.properties)
}

// Value returns the canonical string form: the rr:// prefix followed
// by the slash-joined components. No escaping is performed; a
// Reference built from out-of-grammar components formats to a string
// that may not itself parse.
func (r Reference) Value() string { return r.value }

// String returns the canonical string form, satisfying fmt.Stringer.
func (r Reference) String() string { return r.value }

// IsZero reports whether the Reference is the zero value (uninitialized).
func (r Reference) IsZero() bool { return r.value == "" }

// Equal reports whether two references have identical components,
// including property order.
func (r Reference) Equal(other Reference) bool {
	return r.environment == other.environment &&
		r.application == other.application &&
		r.customer == other.customer &&
		slices.Equal(r.properties, other.properties)
}

// MarshalText implements encoding.TextMarshaler for JSON and other
// text-based serialization formats. The reference serializes as its
// canonical string form.
func (r Reference) MarshalText() ([]byte, error) {
	if r.value == "" {
		return nil, nil
	}
	return []byte(r.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON and other
// text-based serialization formats. Validates against the reference
// grammar. An empty input produces the zero value (unset reference).
func (r *Reference) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*r = Reference{}
		return nil
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
