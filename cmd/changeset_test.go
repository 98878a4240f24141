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

func TestChangesetCreateCommand_SubmitsChangeSet(t *testing.T) {
	t.Cleanup(func() {
		resetSliceFlag(t, changesetCreateCmd, "param")
		resetSliceFlag(t, changesetCreateCmd, "var")
	})

	mockService := withMockService(t)
	mockService.On("CreateChangeSet", mock.Anything, ops.CreateChangeSetRequest{
		ResourceType:  "s3",
		StackName:     "logs",
		ChangeSetType: "CREATE",
		Parameters:    map[string]string{"BucketName": "logs"},
	}).Return(&ops.CreateChangeSetResult{
		Success:       true,
		Valid:         true,
		ChangeSetID:   "cs-id-1",
		ChangeSetName: "logs-changeset-create",
		StackName:     "logs",
		Message:       "Change set created successfully. Review with describe-changeset before executing.",
	})

	output, err := executeCommand(t, "changeset", "create", "s3", "logs", "-P", "BucketName=logs")

	require.NoError(t, err)
	assert.Contains(t, output, "logs-changeset-create")
	assert.Contains(t, output, "cs-id-1")
	mockService.AssertExpectations(t)
}

func TestChangesetCreateCommand_ValidationFailureFailsTheCommand(t *testing.T) {
	t.Cleanup(func() {
		resetSliceFlag(t, changesetCreateCmd, "param")
		resetSliceFlag(t, changesetCreateCmd, "var")
	})

	mockService := withMockService(t)
	mockService.On("CreateChangeSet", mock.Anything, mock.Anything).
		Return(&ops.CreateChangeSetResult{
			Success: true,
			Valid:   false,
			Errors:  []string{"Missing required parameter: BucketName"},
			Message: "Parameter validation failed",
		})

	output, err := executeCommand(t, "changeset", "create", "s3", "logs")

	require.Error(t, err)
	assert.Contains(t, output, "Missing required parameter: BucketName")
}

func TestChangesetDescribeCommand_UsesDeterministicName(t *testing.T) {
	mockService := withMockService(t)
	mockService.On("DescribeChangeSet", mock.Anything, "logs-changeset-create", "logs").
		Return(&ops.DescribeChangeSetResult{
			Success:       true,
			ChangeSetName: "logs-changeset-create",
			StackName:     "logs",
			Status:        "CREATE_COMPLETE",
			Changes: []ops.ChangeSummary{
				{Action: "Add", LogicalID: "Bucket", ResourceType: "AWS::S3::Bucket", Replacement: "N/A"},
			},
			ChangesCount: 1,
		})

	output, err := executeCommand(t, "changeset", "describe", "logs")

	require.NoError(t, err)
	assert.Contains(t, output, "CREATE_COMPLETE")
	assert.Contains(t, output, "Bucket")
	assert.Contains(t, output, "1 change(s)")
	mockService.AssertExpectations(t)
}

func TestChangesetDescribeCommand_ExplicitNameWins(t *testing.T) {
	mockService := withMockService(t)
	mockService.On("DescribeChangeSet", mock.Anything, "custom-cs", "logs").
		Return(&ops.DescribeChangeSetResult{
			Success:       true,
			ChangeSetName: "custom-cs",
			StackName:     "logs",
			Status:        "CREATE_COMPLETE",
		})

	_, err := executeCommand(t, "changeset", "describe", "logs", "custom-cs")

	require.NoError(t, err)
	mockService.AssertExpectations(t)
}

func TestChangesetExecuteCommand_SkipsPromptWithYes(t *testing.T) {
	mockService := withMockService(t)
	mockService.On("ExecuteChangeSet", mock.Anything, "logs-changeset-create", "logs", false).
		Return(&ops.ExecuteChangeSetResult{
			Success:   true,
			StackName: "logs",
			Message:   "Change set logs-changeset-create execution started",
		})

	output, err := executeCommand(t, "changeset", "execute", "logs", "--yes")

	require.NoError(t, err)
	assert.Contains(t, output, "execution started")
	mockService.AssertExpectations(t)

	require.NoError(t, changesetExecuteCmd.Flags().Set("yes", "false"))
}

func TestChangesetExecuteCommand_CancelledAtPrompt(t *testing.T) {
	mockService := withMockService(t)

	mockPrompter := &prompt.MockPrompter{}
	mockPrompter.On("Confirm", mock.Anything).Return(false, nil).Once()
	oldPrompter := prompt.GetDefaultPrompter()
	prompt.SetPrompter(mockPrompter)
	defer prompt.SetPrompter(oldPrompter)

	output, err := executeCommand(t, "changeset", "execute", "logs")

	require.NoError(t, err)
	assert.Contains(t, output, "Execution cancelled")
	mockService.AssertNotCalled(t, "ExecuteChangeSet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockPrompter.AssertExpectations(t)
}

func TestChangesetExecuteCommand_WaitWarningIsShown(t *testing.T) {
	mockService := withMockService(t)
	mockService.On("ExecuteChangeSet", mock.Anything, "logs-changeset-create", "logs", true).
		Return(&ops.ExecuteChangeSetResult{
			Success:     true,
			StackName:   "logs",
			FinalStatus: "CREATE_IN_PROGRESS",
			Message:     "Change set logs-changeset-create execution started",
			Warning:     "timed out waiting for stack logs; the operation is still running",
		})

	output, err := executeCommand(t, "changeset", "execute", "logs", "--wait", "--yes")

	require.NoError(t, err, "a wait timeout is a warning, not a failure")
	assert.Contains(t, output, "timed out")

	require.NoError(t, changesetExecuteCmd.Flags().Set("wait", "false"))
	require.NoError(t, changesetExecuteCmd.Flags().Set("yes", "false"))
}
