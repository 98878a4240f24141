/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package catalog

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Processor renders catalogue templates that carry Go template directives
// before they are parsed or submitted. Plain CloudFormation templates pass
// through untouched because they contain no directives.
type Processor struct{}

// NewProcessor creates a template processor with the Sprig function map.
func NewProcessor() *Processor {
	return &Processor{}
}

// Render executes the template content against the given variables using
// Go's text/template with Sprig functions.
func (p *Processor) Render(content string, variables map[string]any) (string, error) {
	tmpl, err := template.New("cloudformation").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse template directives: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return buf.String(), nil
}
