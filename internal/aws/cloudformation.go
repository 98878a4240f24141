/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// StackStatus represents the status of a CloudFormation stack
type StackStatus string

const (
	StackStatusCreateInProgress         StackStatus = "CREATE_IN_PROGRESS"
	StackStatusCreateComplete           StackStatus = "CREATE_COMPLETE"
	StackStatusCreateFailed             StackStatus = "CREATE_FAILED"
	StackStatusDeleteInProgress         StackStatus = "DELETE_IN_PROGRESS"
	StackStatusDeleteComplete           StackStatus = "DELETE_COMPLETE"
	StackStatusDeleteFailed             StackStatus = "DELETE_FAILED"
	StackStatusUpdateInProgress         StackStatus = "UPDATE_IN_PROGRESS"
	StackStatusUpdateComplete           StackStatus = "UPDATE_COMPLETE"
	StackStatusUpdateFailed             StackStatus = "UPDATE_FAILED"
	StackStatusUpdateRollbackInProgress StackStatus = "UPDATE_ROLLBACK_IN_PROGRESS"
	StackStatusUpdateRollbackComplete   StackStatus = "UPDATE_ROLLBACK_COMPLETE"
	StackStatusUpdateRollbackFailed     StackStatus = "UPDATE_ROLLBACK_FAILED"
	StackStatusRollbackInProgress       StackStatus = "ROLLBACK_IN_PROGRESS"
	StackStatusRollbackComplete         StackStatus = "ROLLBACK_COMPLETE"
	StackStatusRollbackFailed           StackStatus = "ROLLBACK_FAILED"
	StackStatusReviewInProgress         StackStatus = "REVIEW_IN_PROGRESS"

	// StackStatusDoesNotExist is a local sentinel, never reported by
	// CloudFormation itself: it marks a successful status query for a
	// stack that is not provisioned.
	StackStatusDoesNotExist StackStatus = "DOES_NOT_EXIST"
)

// Terminal reports whether the status is a resting state, i.e. no stack
// operation is still in progress.
func (s StackStatus) Terminal() bool {
	return !strings.HasSuffix(string(s), "_IN_PROGRESS")
}

// Change-set statuses as reported by CloudFormation.
const (
	ChangeSetStatusCreatePending    = "CREATE_PENDING"
	ChangeSetStatusCreateInProgress = "CREATE_IN_PROGRESS"
	ChangeSetStatusCreateComplete   = "CREATE_COMPLETE"
	ChangeSetStatusFailed           = "FAILED"
	ChangeSetStatusDeleteComplete   = "DELETE_COMPLETE"
)

// Stack represents a CloudFormation stack with the information this tool
// reports: status, timing, outputs and current parameter values.
type Stack struct {
	Name         string
	Status       StackStatus
	StatusReason string
	CreatedTime  *time.Time
	UpdatedTime  *time.Time
	Description  string
	Outputs      []Output
	Parameters   []Parameter
}

// Output represents a CloudFormation stack output
type Output struct {
	Key         string
	Value       string
	Description string
}

// Parameter represents a CloudFormation stack parameter
type Parameter struct {
	Key   string
	Value string
}

// ChangeSet represents a CloudFormation change set and its planned
// resource changes.
type ChangeSet struct {
	ID           string
	Name         string
	StackName    string
	Status       string
	StatusReason string
	Changes      []ResourceChange
	Parameters   []Parameter
}

// ResourceChange represents one planned change within a change set.
type ResourceChange struct {
	Action       string // Add, Modify, Remove, ...
	LogicalID    string
	PhysicalID   string // empty for resources not yet created
	ResourceType string
	Replacement  string // True, False, Conditional or N/A
	Scope        []string
}

// CreateChangeSetInput contains parameters for creating a change set
type CreateChangeSetInput struct {
	StackName     string
	ChangeSetName string
	TemplateBody  string
	Parameters    []Parameter
	Capabilities  []string
	ChangeSetType string // CREATE or UPDATE
}

// DefaultCloudFormationOperations provides CloudFormation-specific operations
type DefaultCloudFormationOperations struct {
	client CloudFormationClient
}

// NewCloudFormationOperations creates a new CloudFormation operations wrapper
func (c *DefaultClient) NewCloudFormationOperations() CloudFormationOperations {
	return &DefaultCloudFormationOperations{
		client: c.cfn,
	}
}

// NewCloudFormationOperationsWithClient creates operations with a custom client (for testing)
func NewCloudFormationOperationsWithClient(client CloudFormationClient) *DefaultCloudFormationOperations {
	return &DefaultCloudFormationOperations{
		client: client,
	}
}

// CreateChangeSet submits a change set and returns the provider-assigned
// change set id.
func (cf *DefaultCloudFormationOperations) CreateChangeSet(ctx context.Context, input CreateChangeSetInput) (string, error) {
	params := make([]types.Parameter, len(input.Parameters))
	for i, p := range input.Parameters {
		params[i] = types.Parameter{
			ParameterKey:   aws.String(p.Key),
			ParameterValue: aws.String(p.Value),
		}
	}

	capabilities := make([]types.Capability, len(input.Capabilities))
	for i, cap := range input.Capabilities {
		capabilities[i] = types.Capability(cap)
	}

	result, err := cf.client.CreateChangeSet(ctx, &cloudformation.CreateChangeSetInput{
		StackName:     aws.String(input.StackName),
		ChangeSetName: aws.String(input.ChangeSetName),
		TemplateBody:  aws.String(input.TemplateBody),
		Parameters:    params,
		Capabilities:  capabilities,
		ChangeSetType: types.ChangeSetType(input.ChangeSetType),
	})

	if err != nil {
		return "", fmt.Errorf("failed to create change set %s for stack %s: %w", input.ChangeSetName, input.StackName, err)
	}

	log.WithField("change_set", input.ChangeSetName).WithField("stack", input.StackName).
		Info("created change set")

	return aws.ToString(result.Id), nil
}

// DescribeChangeSet retrieves a change set including its full list of
// planned resource changes.
func (cf *DefaultCloudFormationOperations) DescribeChangeSet(ctx context.Context, changeSetName, stackName string) (*ChangeSet, error) {
	result, err := cf.client.DescribeChangeSet(ctx, &cloudformation.DescribeChangeSetInput{
		ChangeSetName: aws.String(changeSetName),
		StackName:     aws.String(stackName),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to describe change set %s for stack %s: %w", changeSetName, stackName, err)
	}

	changeSet := &ChangeSet{
		ID:           aws.ToString(result.ChangeSetId),
		Name:         aws.ToString(result.ChangeSetName),
		StackName:    aws.ToString(result.StackName),
		Status:       string(result.Status),
		StatusReason: aws.ToString(result.StatusReason),
		Changes:      make([]ResourceChange, 0, len(result.Changes)),
		Parameters:   make([]Parameter, 0, len(result.Parameters)),
	}

	for _, change := range result.Changes {
		rc := change.ResourceChange
		if rc == nil {
			continue
		}

		replacement := string(rc.Replacement)
		if replacement == "" {
			replacement = "N/A"
		}

		scope := make([]string, 0, len(rc.Scope))
		for _, s := range rc.Scope {
			scope = append(scope, string(s))
		}

		changeSet.Changes = append(changeSet.Changes, ResourceChange{
			Action:       string(rc.Action),
			LogicalID:    aws.ToString(rc.LogicalResourceId),
			PhysicalID:   aws.ToString(rc.PhysicalResourceId),
			ResourceType: aws.ToString(rc.ResourceType),
			Replacement:  replacement,
			Scope:        scope,
		})
	}

	for _, param := range result.Parameters {
		changeSet.Parameters = append(changeSet.Parameters, Parameter{
			Key:   aws.ToString(param.ParameterKey),
			Value: aws.ToString(param.ParameterValue),
		})
	}

	return changeSet, nil
}

// ExecuteChangeSet triggers execution of a change set.
func (cf *DefaultCloudFormationOperations) ExecuteChangeSet(ctx context.Context, changeSetName, stackName string) error {
	_, err := cf.client.ExecuteChangeSet(ctx, &cloudformation.ExecuteChangeSetInput{
		ChangeSetName: aws.String(changeSetName),
		StackName:     aws.String(stackName),
	})

	if err != nil {
		return fmt.Errorf("failed to execute change set %s for stack %s: %w", changeSetName, stackName, err)
	}

	log.WithField("change_set", changeSetName).WithField("stack", stackName).
		Info("started change set execution")

	return nil
}

// DeleteChangeSet removes a change set.
func (cf *DefaultCloudFormationOperations) DeleteChangeSet(ctx context.Context, changeSetName, stackName string) error {
	_, err := cf.client.DeleteChangeSet(ctx, &cloudformation.DeleteChangeSetInput{
		ChangeSetName: aws.String(changeSetName),
		StackName:     aws.String(stackName),
	})

	if err != nil {
		return fmt.Errorf("failed to delete change set %s for stack %s: %w", changeSetName, stackName, err)
	}

	return nil
}

// DescribeStack retrieves information about a specific stack. A missing
// stack surfaces as an error satisfying IsStackNotFound; callers that
// treat absence as a normal answer translate it themselves.
func (cf *DefaultCloudFormationOperations) DescribeStack(ctx context.Context, stackName string) (*Stack, error) {
	result, err := cf.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to describe stack %s: %w", stackName, err)
	}

	if len(result.Stacks) == 0 {
		return nil, fmt.Errorf("stack %s does not exist", stackName)
	}

	cfnStack := result.Stacks[0]
	stack := &Stack{
		Name:         aws.ToString(cfnStack.StackName),
		Status:       StackStatus(cfnStack.StackStatus),
		StatusReason: aws.ToString(cfnStack.StackStatusReason),
		CreatedTime:  cfnStack.CreationTime,
		UpdatedTime:  cfnStack.LastUpdatedTime,
		Description:  aws.ToString(cfnStack.Description),
		Outputs:      make([]Output, 0, len(cfnStack.Outputs)),
		Parameters:   make([]Parameter, 0, len(cfnStack.Parameters)),
	}

	for _, output := range cfnStack.Outputs {
		stack.Outputs = append(stack.Outputs, Output{
			Key:         aws.ToString(output.OutputKey),
			Value:       aws.ToString(output.OutputValue),
			Description: aws.ToString(output.Description),
		})
	}

	for _, param := range cfnStack.Parameters {
		stack.Parameters = append(stack.Parameters, Parameter{
			Key:   aws.ToString(param.ParameterKey),
			Value: aws.ToString(param.ParameterValue),
		})
	}

	return stack, nil
}

// DeleteStack requests deletion of a CloudFormation stack
func (cf *DefaultCloudFormationOperations) DeleteStack(ctx context.Context, stackName string) error {
	_, err := cf.client.DeleteStack(ctx, &cloudformation.DeleteStackInput{
		StackName: aws.String(stackName),
	})

	if err != nil {
		return fmt.Errorf("failed to delete stack %s: %w", stackName, err)
	}

	log.WithField("stack", stackName).Info("requested stack deletion")

	return nil
}

// IsStackNotFound checks if the error indicates the stack doesn't exist.
// CloudFormation reports a missing stack as a ValidationError whose
// message ends in "does not exist".
func IsStackNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "does not exist") || strings.Contains(msg, "ValidationError")
}

// IsChangeSetAlreadyExists checks if the error indicates a change set with
// the same name already exists for the stack.
func IsChangeSetAlreadyExists(err error) bool {
	return err != nil && strings.Contains(err.Error(), "already exists")
}
