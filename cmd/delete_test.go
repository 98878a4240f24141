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
	"github.com/stackcat/stackcat/internal/prompt"
)

func TestDeleteCommand_DeletesWithYes(t *testing.T) {
	mockService := withMockService(t)
	mockService.On("DeleteStack", mock.Anything, "logs", false).Return(&ops.DeleteStackResult{
		Success:   true,
		StackName: "logs",
		Message:   "Stack logs deletion initiated",
	})

	output, err := executeCommand(t, "delete", "logs", "--yes")

	require.NoError(t, err)
	assert.Contains(t, output, "deletion initiated")
	mockService.AssertExpectations(t)

	require.NoError(t, deleteCmd.Flags().Set("yes", "false"))
}

func TestDeleteCommand_CancelledAtPrompt(t *testing.T) {
	mockService := withMockService(t)

	mockPrompter := &prompt.MockPrompter{}
	mockPrompter.On("Confirm", mock.Anything).Return(false, nil).Once()
	oldPrompter := prompt.GetDefaultPrompter()
	prompt.SetPrompter(mockPrompter)
	defer prompt.SetPrompter(oldPrompter)

	output, err := executeCommand(t, "delete", "logs")

	require.NoError(t, err)
	assert.Contains(t, output, "Deletion cancelled")
	mockService.AssertNotCalled(t, "DeleteStack", mock.Anything, mock.Anything, mock.Anything)
	mockPrompter.AssertExpectations(t)
}

func TestDeleteCommand_WaitWarningIsShown(t *testing.T) {
	mockService := withMockService(t)
	mockService.On("DeleteStack", mock.Anything, "logs", true).Return(&ops.DeleteStackResult{
		Success:     true,
		StackName:   "logs",
		FinalStatus: "DELETE_IN_PROGRESS",
		Message:     "Stack logs deletion initiated",
		Warning:     "timed out waiting for deletion of stack logs; the deletion is still running",
	})

	output, err := executeCommand(t, "delete", "logs", "--wait", "--yes")

	require.NoError(t, err, "a wait timeout is a warning, not a failure")
	assert.Contains(t, output, "timed out")

	require.NoError(t, deleteCmd.Flags().Set("wait", "false"))
	require.NoError(t, deleteCmd.Flags().Set("yes", "false"))
}

func TestVersionCommand_PrintsVersion(t *testing.T) {
	withMockService(t)

	output, err := executeCommand(t, "version")

	require.NoError(t, err)
	assert.Contains(t, output, "stackcat")
	assert.Contains(t, output, "Go version:")
}
