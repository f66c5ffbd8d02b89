// Copyright 2026 The ResourceRef Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/resourceref-project/resourceref/lib/resource"
)

// catalogFile is the on-disk schema shared by the YAML and JSONC
// formats. References are plain strings in files; loading parses them
// through the reference grammar.
type catalogFile struct {
	Catalog     string      `json:"catalog" yaml:"catalog"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Entries     []entryFile `json:"entries" yaml:"entries"`
}

type entryFile struct {
	Ref         string   `json:"ref" yaml:"ref"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Owner       string   `json:"owner,omitempty" yaml:"owner,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// ParseYAML parses YAML catalog bytes and validates every entry.
func ParseYAML(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return fromFile(file)
}

// ParseJSONC strips JSONC comments and trailing commas from data, then
// parses the remaining JSON and validates every entry. Plain JSON is
// valid JSONC, so this also accepts .json files.
func ParseJSONC(data []byte) (*Catalog, error) {
	stripped := jsonc.ToJSON(data)

	var file catalogFile
	if err := json.Unmarshal(stripped, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return fromFile(file)
}

// ReadFile reads a catalog from disk, choosing the format by file
// extension: .yaml/.yml for YAML, .json/.jsonc for JSONC. Returns a
// descriptive error for unrecognized extensions, unreadable files, and
// invalid content.
func ReadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var parsed *Catalog
	switch extension := strings.ToLower(filepath.Ext(path)); extension {
	case ".yaml", ".yml":
		parsed, err = ParseYAML(data)
	case ".json", ".jsonc":
		parsed, err = ParseJSONC(data)
	default:
		return nil, fmt.Errorf("%s: unrecognized catalog extension %q (want .yaml, .yml, .json, or .jsonc)", path, extension)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return parsed, nil
}

// fromFile converts the on-disk schema into a validated Catalog. Every
// ref string must match the reference grammar; the first failure
// reports the entry index and wraps the resource.InvalidFormatError so
// errors.Is and errors.As keep working through the catalog layer.
func fromFile(file catalogFile) (*Catalog, error) {
	entries := make([]Entry, 0, len(file.Entries))
	for i, fileEntry := range file.Entries {
		ref, err := resource.Parse(fileEntry.Ref)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, Entry{
			Ref:         ref,
			Description: fileEntry.Description,
			Owner:       fileEntry.Owner,
			Tags:        fileEntry.Tags,
		})
	}
	return New(file.Catalog, file.Description, entries)
}
