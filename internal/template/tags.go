/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package template

// TagTable maps CloudFormation short-form YAML tags (without the leading
// "!") to intrinsic function names. A table is built once and passed into
// each parse call; it is never mutated afterwards, so concurrent parses
// with different tables cannot interfere.
type TagTable struct {
	functions map[string]string
}

// cfnIntrinsics lists the CloudFormation short-form tags recognised by the
// default table. Each decodes to an intrinsic call of the same name.
var cfnIntrinsics = []string{
	"Ref",
	"Condition",
	"Equals",
	"Not",
	"And",
	"Or",
	"If",
	"FindInMap",
	"Base64",
	"GetAtt",
	"GetAZs",
	"ImportValue",
	"Join",
	"Select",
	"Split",
	"Sub",
	"Transform",
	"Cidr",
}

// NewTagTable builds a table recognising the given tag names, each mapping
// to an intrinsic call of the same name.
func NewTagTable(names ...string) *TagTable {
	functions := make(map[string]string, len(names))
	for _, name := range names {
		functions[name] = name
	}
	return &TagTable{functions: functions}
}

// DefaultTagTable returns a table covering the CloudFormation short-form
// intrinsic functions.
func DefaultTagTable() *TagTable {
	return NewTagTable(cfnIntrinsics...)
}

// Lookup resolves a short-form tag name to its intrinsic function name.
func (t *TagTable) Lookup(tag string) (string, bool) {
	if t == nil {
		return "", false
	}
	fn, ok := t.functions[tag]
	return fn, ok
}

// Names returns the recognised tag names. The slice is a copy; callers
// cannot alter the table through it.
func (t *TagTable) Names() []string {
	names := make([]string, 0, len(t.functions))
	for name := range t.functions {
		names = append(names, name)
	}
	return names
}
