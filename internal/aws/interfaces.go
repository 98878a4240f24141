/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// CloudFormationClient defines the interface for CloudFormation client
// operations. This allows for easier testing with mock implementations.
type CloudFormationClient interface {
	CreateChangeSet(ctx context.Context, params *cloudformation.CreateChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateChangeSetOutput, error)
	DescribeChangeSet(ctx context.Context, params *cloudformation.DescribeChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeChangeSetOutput, error)
	ExecuteChangeSet(ctx context.Context, params *cloudformation.ExecuteChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ExecuteChangeSetOutput, error)
	DeleteChangeSet(ctx context.Context, params *cloudformation.DeleteChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteChangeSetOutput, error)
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
	DeleteStack(ctx context.Context, params *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error)
}

// Ensure that the actual CloudFormation client implements our interface
var _ CloudFormationClient = (*cloudformation.Client)(nil)

// Ensure that DefaultCloudFormationOperations implements CloudFormationOperations
var _ CloudFormationOperations = (*DefaultCloudFormationOperations)(nil)

// CloudFormationOperations defines the high-level CloudFormation
// operations used by the change-set orchestrator and the stack lifecycle.
type CloudFormationOperations interface {
	CreateChangeSet(ctx context.Context, input CreateChangeSetInput) (string, error)
	DescribeChangeSet(ctx context.Context, changeSetName, stackName string) (*ChangeSet, error)
	ExecuteChangeSet(ctx context.Context, changeSetName, stackName string) error
	DeleteChangeSet(ctx context.Context, changeSetName, stackName string) error
	DescribeStack(ctx context.Context, stackName string) (*Stack, error)
	DeleteStack(ctx context.Context, stackName string) error
	WaitForStackOperation(ctx context.Context, stackName string, cfg WaiterConfig) (StackStatus, error)
}
