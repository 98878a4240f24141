/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package template models parsed CloudFormation templates as an explicit
// node tree. A node is a scalar, a sequence, a mapping or an intrinsic
// function call; the closed set of kinds lets consumers handle intrinsic
// functions exhaustively instead of probing dynamic maps.
package template

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind identifies the shape of a Node.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
	KindIntrinsic
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindIntrinsic:
		return "intrinsic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is one node of a parsed template document.
//
// Exactly one of the payload fields is meaningful, selected by Kind:
// Value for scalars, Sequence for sequences, Mapping for mappings, and
// Function/Operand for intrinsic calls. Mapping keys are unique; their
// order is not preserved. Sequence order is preserved.
type Node struct {
	Kind Kind

	// Value holds the lexical form of a scalar. A YAML null or JSON null
	// is represented as an empty Value with Null set.
	Value string
	Null  bool

	Sequence []*Node
	Mapping  map[string]*Node

	// Function is the intrinsic function name (e.g. "Ref", "Sub") and
	// Operand its argument, which may be any node kind.
	Function string
	Operand  *Node
}

// Scalar constructs a scalar node.
func Scalar(value string) *Node {
	return &Node{Kind: KindScalar, Value: value}
}

// Get returns the value for key in a mapping node, or nil when the node
// is not a mapping or the key is absent.
func (n *Node) Get(key string) *Node {
	if n == nil || n.Kind != KindMapping {
		return nil
	}
	return n.Mapping[key]
}

// StringValue returns the scalar value of the node, or the fallback when
// the node is absent, null, or not a scalar.
func (n *Node) StringValue(fallback string) string {
	if n == nil || n.Kind != KindScalar || n.Null {
		return fallback
	}
	return n.Value
}

// IntValue returns the scalar value parsed as an integer. The second
// return value reports whether a usable integer was present.
func (n *Node) IntValue() (int, bool) {
	if n == nil || n.Kind != KindScalar || n.Null {
		return 0, false
	}
	v, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FloatValue returns the scalar value parsed as a float. The second
// return value reports whether a usable number was present.
func (n *Node) FloatValue() (float64, bool) {
	if n == nil || n.Kind != KindScalar || n.Null {
		return 0, false
	}
	v, err := strconv.ParseFloat(n.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// BoolValue returns the scalar value parsed as a boolean, or the fallback
// when the node is absent or not a boolean scalar.
func (n *Node) BoolValue(fallback bool) bool {
	if n == nil || n.Kind != KindScalar || n.Null {
		return fallback
	}
	v, err := strconv.ParseBool(n.Value)
	if err != nil {
		return fallback
	}
	return v
}

// StringSlice returns the elements of a sequence node as scalar strings.
// Non-scalar elements are rendered with String.
func (n *Node) StringSlice() []string {
	if n == nil || n.Kind != KindSequence {
		return nil
	}
	out := make([]string, len(n.Sequence))
	for i, el := range n.Sequence {
		if el.Kind == KindScalar {
			out[i] = el.Value
		} else {
			out[i] = el.String()
		}
	}
	return out
}

// Keys returns the mapping keys in lexical order.
func (n *Node) Keys() []string {
	if n == nil || n.Kind != KindMapping {
		return nil
	}
	keys := make([]string, 0, len(n.Mapping))
	for k := range n.Mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the node in a compact single-line form, mainly for error
// messages and test failures.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case KindScalar:
		if n.Null {
			return "null"
		}
		return n.Value
	case KindSequence:
		s := "["
		for i, el := range n.Sequence {
			if i > 0 {
				s += ", "
			}
			s += el.String()
		}
		return s + "]"
	case KindMapping:
		s := "{"
		for i, k := range n.Keys() {
			if i > 0 {
				s += ", "
			}
			s += k + ": " + n.Mapping[k].String()
		}
		return s + "}"
	case KindIntrinsic:
		return fmt.Sprintf("%s(%s)", n.Function, n.Operand.String())
	default:
		return fmt.Sprintf("<unknown kind %d>", int(n.Kind))
	}
}
