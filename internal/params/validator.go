/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package params

import (
	"fmt"
	"sort"
	"strings"
)

// Result carries the outcome of validating parameter values against a
// schema. Valid holds exactly when Errors is empty; warnings never affect
// validity.
type Result struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// Validate checks user-supplied values against the schema. Every rule is
// evaluated independently so that one result reports all violations, not
// just the first.
//
// AllowedPattern, MinValue and MaxValue are extracted into the schema but
// not enforced here; CloudFormation applies those constraints itself when
// the change set is created.
func Validate(schema Schema, values map[string]string) Result {
	result := Result{
		Errors:   []string{},
		Warnings: []string{},
	}

	for _, name := range schema.RequiredNames() {
		if _, ok := values[name]; !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("Missing required parameter: %s", name))
		}
	}

	supplied := make([]string, 0, len(values))
	for name := range values {
		supplied = append(supplied, name)
	}
	sort.Strings(supplied)

	for _, name := range supplied {
		def, known := schema[name]
		if !known {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Unknown parameter: %s", name))
			continue
		}

		value := values[name]

		if len(def.AllowedValues) > 0 && !contains(def.AllowedValues, value) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Invalid value %q for parameter %s, allowed values: %s",
					value, name, strings.Join(def.AllowedValues, ", ")))
		}

		// Length bounds are inclusive.
		if def.MinLength != nil && len(value) < *def.MinLength {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Parameter %s must be at least %d characters", name, *def.MinLength))
		}
		if def.MaxLength != nil && len(value) > *def.MaxLength {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Parameter %s must be at most %d characters", name, *def.MaxLength))
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
