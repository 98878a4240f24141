/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package params

import (
	"testing"

	"github.com/stackcat/stackcat/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseYAML(t *testing.T, body string) *template.Node {
	t.Helper()
	doc, err := template.ParseYAML([]byte(body), template.DefaultTagTable())
	require.NoError(t, err)
	return doc
}

func TestExtract_FullDefinition(t *testing.T) {
	doc := parseYAML(t, `
Parameters:
  BucketName:
    Type: String
    Description: Name of the bucket
    AllowedPattern: "[a-z0-9-]+"
    ConstraintDescription: lowercase letters, digits and hyphens
    MinLength: 3
    MaxLength: 63
  Environment:
    Type: String
    Default: dev
    AllowedValues:
      - dev
      - prod
  Retention:
    Type: Number
    Default: 14
    MinValue: 1
    MaxValue: 365
  DbPassword:
    Type: String
    NoEcho: true
`)

	schema, err := Extract(doc)
	require.NoError(t, err)
	require.Len(t, schema, 4)

	bucket := schema["BucketName"]
	assert.Equal(t, "String", bucket.Type)
	assert.Equal(t, "Name of the bucket", bucket.Description)
	assert.Equal(t, "[a-z0-9-]+", bucket.AllowedPattern)
	assert.Equal(t, "lowercase letters, digits and hyphens", bucket.ConstraintDescription)
	require.NotNil(t, bucket.MinLength)
	assert.Equal(t, 3, *bucket.MinLength)
	require.NotNil(t, bucket.MaxLength)
	assert.Equal(t, 63, *bucket.MaxLength)
	assert.True(t, bucket.Required)
	assert.Nil(t, bucket.Default)

	env := schema["Environment"]
	assert.False(t, env.Required)
	require.NotNil(t, env.Default)
	assert.Equal(t, "dev", *env.Default)
	assert.Equal(t, []string{"dev", "prod"}, env.AllowedValues)

	retention := schema["Retention"]
	assert.Equal(t, "Number", retention.Type)
	require.NotNil(t, retention.MinValue)
	assert.Equal(t, 1.0, *retention.MinValue)
	require.NotNil(t, retention.MaxValue)
	assert.Equal(t, 365.0, *retention.MaxValue)

	assert.True(t, schema["DbPassword"].NoEcho)
}

func TestExtract_NoParametersBlock(t *testing.T) {
	doc := parseYAML(t, `
Resources:
  Bucket:
    Type: AWS::S3::Bucket
`)

	schema, err := Extract(doc)
	require.NoError(t, err)
	assert.Empty(t, schema)
}

func TestExtract_TypeDefaultsToString(t *testing.T) {
	doc := parseYAML(t, `
Parameters:
  Name:
    Description: untyped
`)

	schema, err := Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, "String", schema["Name"].Type)
	assert.Equal(t, []string{}, schema["Name"].AllowedValues)
}

func TestExtract_EmptyStringDefaultIsOptional(t *testing.T) {
	doc := parseYAML(t, `
Parameters:
  Prefix:
    Type: String
    Default: ""
  Suffix:
    Type: String
`)

	schema, err := Extract(doc)
	require.NoError(t, err)
	assert.False(t, schema["Prefix"].Required)
	require.NotNil(t, schema["Prefix"].Default)
	assert.Equal(t, "", *schema["Prefix"].Default)
	assert.True(t, schema["Suffix"].Required)
}

func TestExtract_RequiredNames(t *testing.T) {
	doc := parseYAML(t, `
Parameters:
  Zebra:
    Type: String
  Alpha:
    Type: String
  Optional:
    Type: String
    Default: x
`)

	schema, err := Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Zebra"}, schema.RequiredNames())
	assert.Equal(t, []string{"Alpha", "Optional", "Zebra"}, schema.Names())
}

func TestExtract_MalformedParametersBlock(t *testing.T) {
	_, err := Extract(parseYAML(t, `Parameters: just-a-string`))
	require.Error(t, err)

	_, err = Extract(parseYAML(t, `
Parameters:
  Broken: just-a-string
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
}

func TestExtract_FromJSONTemplate(t *testing.T) {
	doc, err := template.ParseJSON([]byte(`{
  "Parameters": {
    "InstanceType": {
      "Type": "String",
      "Default": "t3.micro",
      "AllowedValues": ["t3.micro", "t3.small"]
    }
  }
}`))
	require.NoError(t, err)

	schema, err := Extract(doc)
	require.NoError(t, err)
	def := schema["InstanceType"]
	assert.False(t, def.Required)
	assert.Equal(t, []string{"t3.micro", "t3.small"}, def.AllowedValues)
}
