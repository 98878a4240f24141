/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the syntax of a template body.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// Parse parses a template body into a node tree. YAML bodies decode
// CloudFormation short-form tags through the supplied tag table; JSON
// bodies parse as ordinary JSON (JSON has no tag syntax, so the table is
// not consulted).
func Parse(data []byte, format Format, tags *TagTable) (*Node, error) {
	if format == FormatJSON {
		return ParseJSON(data)
	}
	return ParseYAML(data, tags)
}

// ParseYAML parses a YAML template body, decoding every short-form tag in
// the table into an intrinsic call. Tags outside the table are an error:
// decoding is total over the recognised set, and anything else indicates a
// template this tool does not understand.
func ParseYAML(data []byte, tags *TagTable) (*Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("malformed YAML: %w", err)
	}
	if root.Kind == 0 {
		// Empty document.
		return &Node{Kind: KindScalar, Null: true}, nil
	}
	return convertYAML(&root, tags)
}

func convertYAML(n *yaml.Node, tags *TagTable) (*Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return &Node{Kind: KindScalar, Null: true}, nil
		}
		return convertYAML(n.Content[0], tags)

	case yaml.AliasNode:
		return convertYAML(n.Alias, tags)
	}

	// Short-form tags ("!Ref", "!Sub", ...) wrap the underlying scalar,
	// sequence or mapping in an intrinsic call. Standard tags ("!!str",
	// "!!map", ...) fall through to plain conversion.
	if tag, ok := shortFormTag(n.Tag); ok {
		fn, known := tags.Lookup(tag)
		if !known {
			return nil, fmt.Errorf("unrecognised tag !%s at line %d, column %d", tag, n.Line, n.Column)
		}
		operand, err := convertYAMLUntagged(n, tags)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindIntrinsic, Function: fn, Operand: operand}, nil
	}

	return convertYAMLUntagged(n, tags)
}

// convertYAMLUntagged converts a YAML node by structural kind alone,
// ignoring any custom tag already consumed by the caller.
func convertYAMLUntagged(n *yaml.Node, tags *TagTable) (*Node, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return &Node{Kind: KindScalar, Value: n.Value, Null: n.Tag == "!!null"}, nil

	case yaml.SequenceNode:
		seq := make([]*Node, 0, len(n.Content))
		for _, el := range n.Content {
			converted, err := convertYAML(el, tags)
			if err != nil {
				return nil, err
			}
			seq = append(seq, converted)
		}
		return &Node{Kind: KindSequence, Sequence: seq}, nil

	case yaml.MappingNode:
		mapping := make(map[string]*Node, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("non-scalar mapping key at line %d, column %d", key.Line, key.Column)
			}
			value, err := convertYAML(n.Content[i+1], tags)
			if err != nil {
				return nil, err
			}
			mapping[key.Value] = value
		}
		return &Node{Kind: KindMapping, Mapping: mapping}, nil

	case yaml.AliasNode:
		return convertYAMLUntagged(n.Alias, tags)

	default:
		return nil, fmt.Errorf("unsupported YAML node kind %d at line %d", n.Kind, n.Line)
	}
}

// shortFormTag reports whether a resolved YAML tag is a custom short-form
// tag and returns it without the leading "!". Standard tags resolve to the
// "!!" namespace and are not short form.
func shortFormTag(tag string) (string, bool) {
	if !strings.HasPrefix(tag, "!") || strings.HasPrefix(tag, "!!") {
		return "", false
	}
	return strings.TrimPrefix(tag, "!"), true
}

// ParseJSON parses a JSON template body into a node tree. Numbers keep
// their lexical form so that values like 09 digit strings and large
// integers survive the round trip.
func ParseJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}

	// Trailing content after the document is malformed input, not an
	// extra document.
	if dec.More() {
		return nil, fmt.Errorf("malformed JSON: unexpected trailing content")
	}

	return convertJSON(doc)
}

func convertJSON(v any) (*Node, error) {
	switch value := v.(type) {
	case nil:
		return &Node{Kind: KindScalar, Null: true}, nil
	case string:
		return Scalar(value), nil
	case bool:
		return Scalar(strconv.FormatBool(value)), nil
	case json.Number:
		return Scalar(value.String()), nil
	case []any:
		seq := make([]*Node, 0, len(value))
		for _, el := range value {
			converted, err := convertJSON(el)
			if err != nil {
				return nil, err
			}
			seq = append(seq, converted)
		}
		return &Node{Kind: KindSequence, Sequence: seq}, nil
	case map[string]any:
		mapping := make(map[string]*Node, len(value))
		for key, el := range value {
			converted, err := convertJSON(el)
			if err != nil {
				return nil, err
			}
			mapping[key] = converted
		}
		return &Node{Kind: KindMapping, Mapping: mapping}, nil
	default:
		return nil, fmt.Errorf("unsupported JSON value of type %T", v)
	}
}
