/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"errors"
	"testing"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateChangeSet_Success(t *testing.T) {
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("CreateChangeSet", mock.Anything, mock.MatchedBy(func(input *cloudformation.CreateChangeSetInput) bool {
		return awssdk.ToString(input.StackName) == "web-app" &&
			awssdk.ToString(input.ChangeSetName) == "web-app-changeset-create" &&
			input.ChangeSetType == types.ChangeSetTypeCreate &&
			len(input.Parameters) == 1 &&
			awssdk.ToString(input.Parameters[0].ParameterKey) == "Environment" &&
			len(input.Capabilities) == 2
	})).Return(&cloudformation.CreateChangeSetOutput{
		Id: awssdk.String("arn:aws:cloudformation:eu-west-2:123456789012:changeSet/web-app-changeset-create/abc123"),
	}, nil)

	id, err := ops.CreateChangeSet(context.Background(), CreateChangeSetInput{
		StackName:     "web-app",
		ChangeSetName: "web-app-changeset-create",
		TemplateBody:  "{}",
		Parameters:    []Parameter{{Key: "Environment", Value: "dev"}},
		Capabilities:  []string{"CAPABILITY_IAM", "CAPABILITY_NAMED_IAM"},
		ChangeSetType: "CREATE",
	})

	require.NoError(t, err)
	assert.Contains(t, id, "changeSet/web-app-changeset-create")
	mockClient.AssertExpectations(t)
}

func TestCreateChangeSet_Error(t *testing.T) {
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("CreateChangeSet", mock.Anything, mock.Anything).
		Return(nil, errors.New("AccessDenied"))

	_, err := ops.CreateChangeSet(context.Background(), CreateChangeSetInput{
		StackName:     "web-app",
		ChangeSetName: "web-app-changeset-create",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create change set web-app-changeset-create")
}

func TestDescribeChangeSet_ConvertsChanges(t *testing.T) {
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("DescribeChangeSet", mock.Anything, mock.MatchedBy(func(input *cloudformation.DescribeChangeSetInput) bool {
		return awssdk.ToString(input.ChangeSetName) == "web-app-changeset-update" &&
			awssdk.ToString(input.StackName) == "web-app"
	})).Return(&cloudformation.DescribeChangeSetOutput{
		ChangeSetId:   awssdk.String("cs-id"),
		ChangeSetName: awssdk.String("web-app-changeset-update"),
		StackName:     awssdk.String("web-app"),
		Status:        types.ChangeSetStatusCreateComplete,
		Changes: []types.Change{
			{
				ResourceChange: &types.ResourceChange{
					Action:            types.ChangeActionModify,
					LogicalResourceId: awssdk.String("Bucket"),
					ResourceType:      awssdk.String("AWS::S3::Bucket"),
					Replacement:       types.ReplacementTrue,
					Scope:             []types.ResourceAttribute{types.ResourceAttributeProperties},
				},
			},
			{
				ResourceChange: &types.ResourceChange{
					Action:            types.ChangeActionAdd,
					LogicalResourceId: awssdk.String("Queue"),
					ResourceType:      awssdk.String("AWS::SQS::Queue"),
				},
			},
		},
		Parameters: []types.Parameter{
			{ParameterKey: awssdk.String("Environment"), ParameterValue: awssdk.String("prod")},
		},
	}, nil)

	cs, err := ops.DescribeChangeSet(context.Background(), "web-app-changeset-update", "web-app")

	require.NoError(t, err)
	assert.Equal(t, "cs-id", cs.ID)
	assert.Equal(t, ChangeSetStatusCreateComplete, cs.Status)
	require.Len(t, cs.Changes, 2)
	assert.Equal(t, "Modify", cs.Changes[0].Action)
	assert.Equal(t, "Bucket", cs.Changes[0].LogicalID)
	assert.Equal(t, "True", cs.Changes[0].Replacement)
	assert.Equal(t, []string{"Properties"}, cs.Changes[0].Scope)
	assert.Equal(t, "N/A", cs.Changes[1].Replacement, "empty replacement maps to N/A")
	require.Len(t, cs.Parameters, 1)
	assert.Equal(t, "Environment", cs.Parameters[0].Key)
}

func TestDescribeChangeSet_SkipsNilResourceChange(t *testing.T) {
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("DescribeChangeSet", mock.Anything, mock.Anything).
		Return(&cloudformation.DescribeChangeSetOutput{
			ChangeSetId: awssdk.String("cs-id"),
			Status:      types.ChangeSetStatusCreateComplete,
			Changes:     []types.Change{{ResourceChange: nil}},
		}, nil)

	cs, err := ops.DescribeChangeSet(context.Background(), "cs", "stack")

	require.NoError(t, err)
	assert.Empty(t, cs.Changes)
}

func TestExecuteChangeSet(t *testing.T) {
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("ExecuteChangeSet", mock.Anything, mock.MatchedBy(func(input *cloudformation.ExecuteChangeSetInput) bool {
		return awssdk.ToString(input.ChangeSetName) == "cs" && awssdk.ToString(input.StackName) == "stack"
	})).Return(&cloudformation.ExecuteChangeSetOutput{}, nil)

	err := ops.ExecuteChangeSet(context.Background(), "cs", "stack")

	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestDeleteChangeSet(t *testing.T) {
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("DeleteChangeSet", mock.Anything, mock.Anything).
		Return(&cloudformation.DeleteChangeSetOutput{}, nil)

	err := ops.DeleteChangeSet(context.Background(), "cs", "stack")

	assert.NoError(t, err)
}

func TestDescribeStack_ConvertsStack(t *testing.T) {
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockClient.On("DescribeStacks", mock.Anything, mock.MatchedBy(func(input *cloudformation.DescribeStacksInput) bool {
		return awssdk.ToString(input.StackName) == "web-app"
	})).Return(&cloudformation.DescribeStacksOutput{
		Stacks: []types.Stack{
			{
				StackName:    awssdk.String("web-app"),
				StackStatus:  types.StackStatusUpdateComplete,
				CreationTime: &created,
				Description:  awssdk.String("Web application stack"),
				Outputs: []types.Output{
					{OutputKey: awssdk.String("URL"), OutputValue: awssdk.String("https://example.com"), Description: awssdk.String("Endpoint")},
				},
				Parameters: []types.Parameter{
					{ParameterKey: awssdk.String("Environment"), ParameterValue: awssdk.String("prod")},
				},
			},
		},
	}, nil)

	stack, err := ops.DescribeStack(context.Background(), "web-app")

	require.NoError(t, err)
	assert.Equal(t, "web-app", stack.Name)
	assert.Equal(t, StackStatusUpdateComplete, stack.Status)
	assert.Equal(t, &created, stack.CreatedTime)
	require.Len(t, stack.Outputs, 1)
	assert.Equal(t, "URL", stack.Outputs[0].Key)
	require.Len(t, stack.Parameters, 1)
	assert.Equal(t, "prod", stack.Parameters[0].Value)
}

func TestDescribeStack_EmptyResult(t *testing.T) {
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("DescribeStacks", mock.Anything, mock.Anything).
		Return(&cloudformation.DescribeStacksOutput{Stacks: []types.Stack{}}, nil)

	_, err := ops.DescribeStack(context.Background(), "ghost")

	require.Error(t, err)
	assert.True(t, IsStackNotFound(err))
}

func TestDeleteStack(t *testing.T) {
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("DeleteStack", mock.Anything, mock.MatchedBy(func(input *cloudformation.DeleteStackInput) bool {
		return awssdk.ToString(input.StackName) == "web-app"
	})).Return(&cloudformation.DeleteStackOutput{}, nil)

	err := ops.DeleteStack(context.Background(), "web-app")

	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestStackStatusTerminal(t *testing.T) {
	assert.True(t, StackStatusCreateComplete.Terminal())
	assert.True(t, StackStatusRollbackComplete.Terminal())
	assert.True(t, StackStatusDeleteFailed.Terminal())
	assert.False(t, StackStatusCreateInProgress.Terminal())
	assert.False(t, StackStatusUpdateRollbackInProgress.Terminal())
}

func TestIsStackNotFound(t *testing.T) {
	assert.True(t, IsStackNotFound(errors.New("ValidationError: Stack with id web-app does not exist")))
	assert.True(t, IsStackNotFound(errors.New("stack web-app does not exist")))
	assert.False(t, IsStackNotFound(errors.New("AccessDenied")))
	assert.False(t, IsStackNotFound(nil))
}

func TestIsChangeSetAlreadyExists(t *testing.T) {
	assert.True(t, IsChangeSetAlreadyExists(errors.New("ChangeSet [web-app-changeset-create] already exists")))
	assert.False(t, IsChangeSetAlreadyExists(errors.New("throttled")))
	assert.False(t, IsChangeSetAlreadyExists(nil))
}
