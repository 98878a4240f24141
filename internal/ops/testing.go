/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package ops

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockService implements Service for testing
type MockService struct {
	mock.Mock
}

func (m *MockService) ListResources(ctx context.Context) *ListResourcesResult {
	args := m.Called(ctx)
	return args.Get(0).(*ListResourcesResult)
}

func (m *MockService) TemplateInfo(ctx context.Context, resourceType string) *TemplateInfoResult {
	args := m.Called(ctx, resourceType)
	return args.Get(0).(*TemplateInfoResult)
}

func (m *MockService) TemplateParameters(ctx context.Context, resourceType string) *TemplateParametersResult {
	args := m.Called(ctx, resourceType)
	return args.Get(0).(*TemplateParametersResult)
}

func (m *MockService) ValidateParameters(ctx context.Context, resourceType string, values map[string]string) *ValidateParametersResult {
	args := m.Called(ctx, resourceType, values)
	return args.Get(0).(*ValidateParametersResult)
}

func (m *MockService) CreateChangeSet(ctx context.Context, req CreateChangeSetRequest) *CreateChangeSetResult {
	args := m.Called(ctx, req)
	return args.Get(0).(*CreateChangeSetResult)
}

func (m *MockService) DescribeChangeSet(ctx context.Context, changeSetName, stackName string) *DescribeChangeSetResult {
	args := m.Called(ctx, changeSetName, stackName)
	return args.Get(0).(*DescribeChangeSetResult)
}

func (m *MockService) ExecuteChangeSet(ctx context.Context, changeSetName, stackName string, wait bool) *ExecuteChangeSetResult {
	args := m.Called(ctx, changeSetName, stackName, wait)
	return args.Get(0).(*ExecuteChangeSetResult)
}

func (m *MockService) StackStatus(ctx context.Context, stackName string) *StackStatusResult {
	args := m.Called(ctx, stackName)
	return args.Get(0).(*StackStatusResult)
}

func (m *MockService) DeleteStack(ctx context.Context, stackName string, wait bool) *DeleteStackResult {
	args := m.Called(ctx, stackName, wait)
	return args.Get(0).(*DeleteStackResult)
}

var _ Service = (*MockService)(nil)
