/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package params derives parameter schemas from parsed CloudFormation
// templates and validates user-supplied values against them.
package params

import (
	"fmt"
	"sort"

	"github.com/stackcat/stackcat/internal/template"
)

// Definition describes a single template parameter. A definition is built
// once from a template document and not modified afterwards.
type Definition struct {
	Name                  string
	Type                  string
	Description           string
	Default               *string
	AllowedValues         []string
	AllowedPattern        string
	ConstraintDescription string
	MinLength             *int
	MaxLength             *int
	MinValue              *float64
	MaxValue              *float64
	NoEcho                bool

	// Required is derived at extraction time: a parameter is required
	// exactly when it declares no Default. An empty-string Default still
	// counts as a default.
	Required bool
}

// Schema maps parameter names to their definitions for one resolved
// template. Schemas are built fresh per operation; the template on disk
// may change between catalogue refreshes, so they are never cached.
type Schema map[string]Definition

// Names returns all parameter names in lexical order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RequiredNames returns the names of all required parameters in lexical
// order.
func (s Schema) RequiredNames() []string {
	var names []string
	for name, def := range s {
		if def.Required {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Extract reads the top-level Parameters block of a template document into
// a schema. A template without a Parameters block yields an empty schema.
func Extract(doc *template.Node) (Schema, error) {
	schema := make(Schema)

	parameters := doc.Get("Parameters")
	if parameters == nil {
		return schema, nil
	}
	if parameters.Kind != template.KindMapping {
		return nil, fmt.Errorf("Parameters block is a %s, expected a mapping", parameters.Kind)
	}

	for name, entry := range parameters.Mapping {
		if entry.Kind != template.KindMapping {
			return nil, fmt.Errorf("parameter %s: definition is a %s, expected a mapping", name, entry.Kind)
		}

		def := Definition{
			Name:                  name,
			Type:                  entry.Get("Type").StringValue("String"),
			Description:           entry.Get("Description").StringValue(""),
			AllowedValues:         entry.Get("AllowedValues").StringSlice(),
			AllowedPattern:        entry.Get("AllowedPattern").StringValue(""),
			ConstraintDescription: entry.Get("ConstraintDescription").StringValue(""),
			NoEcho:                entry.Get("NoEcho").BoolValue(false),
		}
		if def.AllowedValues == nil {
			def.AllowedValues = []string{}
		}

		if node := entry.Get("Default"); node != nil {
			value := node.StringValue("")
			def.Default = &value
		}
		def.Required = def.Default == nil

		if v, ok := entry.Get("MinLength").IntValue(); ok {
			def.MinLength = &v
		}
		if v, ok := entry.Get("MaxLength").IntValue(); ok {
			def.MaxLength = &v
		}
		if v, ok := entry.Get("MinValue").FloatValue(); ok {
			def.MinValue = &v
		}
		if v, ok := entry.Get("MaxValue").FloatValue(); ok {
			def.MaxValue = &v
		}

		schema[name] = def
	}

	return schema, nil
}
