// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

// Package typeindex enumerates registered Go types by package prefix.
//
// Go has no classpath to scan: the set of types a binary knows is
// fixed at link time and not discoverable at runtime. An enumerable
// type set is therefore built by explicit registration, the same
// pattern database/sql uses for drivers. Packages register their
// types (typically from init or a test harness) and consumers list
// them by import-path prefix or look them up by qualified name.
//
// The index stores reflect.Type handles, so a listed entry gives the
// consumer full runtime metadata: fields, methods, kind.
package typeindex

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
)

// Entry describes one registered type.
type Entry struct {
	// Type is the registered type with pointers dereferenced to the
	// named element type.
	Type reflect.Type

	// PkgPath is the import path of the package defining the type.
	PkgPath string

	// Name is the type's name within its package.
	Name string
}

// QualifiedName returns the import-path-qualified type name, e.g.
// "github.com/resourceref-project/resourceref/lib/catalog.Entry".
func (e Entry) QualifiedName() string {
	return e.PkgPath + "." + e.Name
}

// Index is an isolated type registry. The zero value is not usable;
// create one with NewIndex. Most callers use the package-level default
// index through Register, List, and Lookup.
type Index struct {
	// mu protects byName. Registration happens from init functions
	// and tests; lookups may come from anywhere.
	mu     sync.Mutex
	byName map[string]Entry
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{byName: make(map[string]Entry)}
}

// Register records the dynamic type of v. Pointer types are
// dereferenced until a non-pointer type is reached, so Register(&T{})
// and Register(T{}) record the same entry. Registering the same type
// again is a no-op.
//
// Returns an error for unnamed types (slices, maps, anonymous
// structs, pointers to them) and for predeclared types (int, string),
// which have no package path to enumerate under.
func (x *Index) Register(v any) error {
	t := reflect.TypeOf(v)
	if t == nil {
		return fmt.Errorf("typeindex: cannot register untyped nil")
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return fmt.Errorf("typeindex: cannot register unnamed type %s", t)
	}
	if t.PkgPath() == "" {
		return fmt.Errorf("typeindex: cannot register predeclared type %s", t)
	}

	entry := Entry{Type: t, PkgPath: t.PkgPath(), Name: t.Name()}
	qualified := entry.QualifiedName()

	x.mu.Lock()
	defer x.mu.Unlock()
	if existing, ok := x.byName[qualified]; ok {
		if existing.Type == t {
			return nil
		}
		return fmt.Errorf("typeindex: %s already registered with a different type", qualified)
	}
	x.byName[qualified] = entry
	return nil
}

// List returns the registered entries whose package import path is
// packagePrefix or lives beneath it: the prefix "a/b" matches
// packages "a/b" and "a/b/c" but never "a/bc". The empty prefix
// matches every entry. Results are sorted by qualified name.
func (x *Index) List(packagePrefix string) []Entry {
	x.mu.Lock()
	defer x.mu.Unlock()

	var entries []Entry
	for _, entry := range x.byName {
		if matchesPackage(entry.PkgPath, packagePrefix) {
			entries = append(entries, entry)
		}
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.QualifiedName(), b.QualifiedName())
	})
	return entries
}

// Lookup returns the type registered under the given qualified name.
func (x *Index) Lookup(qualifiedName string) (reflect.Type, bool) {
	x.mu.Lock()
	defer x.mu.Unlock()
	entry, ok := x.byName[qualifiedName]
	if !ok {
		return nil, false
	}
	return entry.Type, true
}

// Len returns the number of registered types.
func (x *Index) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.byName)
}

// matchesPackage reports whether pkgPath equals prefix or is a
// subpackage of it. Matching is segment-aware, never a bare string
// prefix.
func matchesPackage(pkgPath, prefix string) bool {
	if prefix == "" {
		return true
	}
	return pkgPath == prefix || strings.HasPrefix(pkgPath, prefix+"/")
}

// defaultIndex backs the package-level functions.
var defaultIndex = NewIndex()

// Register records the dynamic type of v in the default index.
func Register(v any) error { return defaultIndex.Register(v) }

// List returns the default index's entries under packagePrefix.
func List(packagePrefix string) []Entry { return defaultIndex.List(packagePrefix) }

// Lookup returns the type registered under qualifiedName in the
// default index.
func Lookup(qualifiedName string) (reflect.Type, bool) { return defaultIndex.Lookup(qualifiedName) }
