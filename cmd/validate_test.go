/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stackcat/stackcat/internal/ops"
)

func TestValidateCommand_ValidParameters(t *testing.T) {
	t.Cleanup(func() { resetSliceFlag(t, validateCmd, "param") })

	mockService := withMockService(t)
	mockService.On("ValidateParameters", mock.Anything, "s3", map[string]string{
		"BucketName": "logs",
	}).Return(&ops.ValidateParametersResult{
		Success: true,
		Valid:   true,
		Message: "Parameters are valid",
	})

	output, err := executeCommand(t, "validate", "s3", "-P", "BucketName=logs")

	require.NoError(t, err)
	assert.Contains(t, output, "Parameters are valid")
	mockService.AssertExpectations(t)
}

func TestValidateCommand_InvalidParametersFailTheCommand(t *testing.T) {
	t.Cleanup(func() { resetSliceFlag(t, validateCmd, "param") })

	mockService := withMockService(t)
	mockService.On("ValidateParameters", mock.Anything, "s3", mock.Anything).
		Return(&ops.ValidateParametersResult{
			Success:  true,
			Valid:    false,
			Errors:   []string{"Missing required parameter: BucketName"},
			Warnings: []string{"Unknown parameter: Extra"},
			Message:  "Parameter validation failed",
		})

	output, err := executeCommand(t, "validate", "s3", "-P", "Extra=x")

	require.Error(t, err, "an invalid parameter set should fail the command")
	assert.Contains(t, output, "Missing required parameter: BucketName")
	assert.Contains(t, output, "Unknown parameter: Extra")
}

func TestValidateCommand_RejectsMalformedPair(t *testing.T) {
	t.Cleanup(func() { resetSliceFlag(t, validateCmd, "param") })
	withMockService(t)

	_, err := executeCommand(t, "validate", "s3", "-P", "no-equals-sign")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key=value pair")
}
