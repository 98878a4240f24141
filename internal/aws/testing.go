/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/stretchr/testify/mock"
)

// MockCloudFormationOperations implements CloudFormationOperations for testing
type MockCloudFormationOperations struct {
	mock.Mock
}

func (m *MockCloudFormationOperations) CreateChangeSet(ctx context.Context, input CreateChangeSetInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockCloudFormationOperations) DescribeChangeSet(ctx context.Context, changeSetName, stackName string) (*ChangeSet, error) {
	args := m.Called(ctx, changeSetName, stackName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ChangeSet), args.Error(1)
}

func (m *MockCloudFormationOperations) ExecuteChangeSet(ctx context.Context, changeSetName, stackName string) error {
	args := m.Called(ctx, changeSetName, stackName)
	return args.Error(0)
}

func (m *MockCloudFormationOperations) DeleteChangeSet(ctx context.Context, changeSetName, stackName string) error {
	args := m.Called(ctx, changeSetName, stackName)
	return args.Error(0)
}

func (m *MockCloudFormationOperations) DescribeStack(ctx context.Context, stackName string) (*Stack, error) {
	args := m.Called(ctx, stackName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Stack), args.Error(1)
}

func (m *MockCloudFormationOperations) DeleteStack(ctx context.Context, stackName string) error {
	args := m.Called(ctx, stackName)
	return args.Error(0)
}

func (m *MockCloudFormationOperations) WaitForStackOperation(ctx context.Context, stackName string, cfg WaiterConfig) (StackStatus, error) {
	args := m.Called(ctx, stackName, cfg)
	return args.Get(0).(StackStatus), args.Error(1)
}

var _ CloudFormationOperations = (*MockCloudFormationOperations)(nil)

// MockCloudFormationClient implements the AWS CloudFormation service client interface for testing
type MockCloudFormationClient struct {
	mock.Mock
}

func (m *MockCloudFormationClient) CreateChangeSet(ctx context.Context, params *cloudformation.CreateChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateChangeSetOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.CreateChangeSetOutput), args.Error(1)
}

func (m *MockCloudFormationClient) DescribeChangeSet(ctx context.Context, params *cloudformation.DescribeChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeChangeSetOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.DescribeChangeSetOutput), args.Error(1)
}

func (m *MockCloudFormationClient) ExecuteChangeSet(ctx context.Context, params *cloudformation.ExecuteChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ExecuteChangeSetOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.ExecuteChangeSetOutput), args.Error(1)
}

func (m *MockCloudFormationClient) DeleteChangeSet(ctx context.Context, params *cloudformation.DeleteChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteChangeSetOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.DeleteChangeSetOutput), args.Error(1)
}

func (m *MockCloudFormationClient) DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.DescribeStacksOutput), args.Error(1)
}

func (m *MockCloudFormationClient) DeleteStack(ctx context.Context, params *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.DeleteStackOutput), args.Error(1)
}

var _ CloudFormationClient = (*MockCloudFormationClient)(nil)
