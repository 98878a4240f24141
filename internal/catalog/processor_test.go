/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_RendersVariables(t *testing.T) {
	content := `
Resources:
  Bucket:
    Type: AWS::S3::Bucket
    Properties:
      BucketName: {{ .Project }}-{{ .Stage }}
`

	rendered, err := NewProcessor().Render(content, map[string]any{
		"Project": "stackcat",
		"Stage":   "dev",
	})
	require.NoError(t, err)
	assert.Contains(t, rendered, "BucketName: stackcat-dev")
}

func TestProcessor_SprigFunctions(t *testing.T) {
	rendered, err := NewProcessor().Render(`Name: {{ .Name | upper }}`, map[string]any{
		"Name": "widgets",
	})
	require.NoError(t, err)
	assert.Equal(t, "Name: WIDGETS", rendered)
}

func TestProcessor_PlainTemplatePassesThrough(t *testing.T) {
	content := "Resources:\n  Queue:\n    Type: AWS::SQS::Queue\n"

	rendered, err := NewProcessor().Render(content, nil)
	require.NoError(t, err)
	assert.Equal(t, content, rendered)
}

func TestProcessor_MissingVariableIsError(t *testing.T) {
	_, err := NewProcessor().Render(`Name: {{ .Missing }}`, map[string]any{})
	require.Error(t, err)
}

func TestProcessor_BadDirectiveIsError(t *testing.T) {
	_, err := NewProcessor().Render(`Name: {{ .Unclosed`, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse template directives")
}
