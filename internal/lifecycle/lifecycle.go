/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package lifecycle answers stack status queries and drives stack deletion,
// independent of any change-set workflow.
package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"

	"github.com/stackcat/stackcat/internal/aws"
)

// Manager queries and deletes CloudFormation stacks.
type Manager struct {
	cfn    aws.CloudFormationOperations
	waiter aws.WaiterConfig
}

// NewManager creates a manager using the default waiter cadence.
func NewManager(cfn aws.CloudFormationOperations) *Manager {
	return NewManagerWithWaiter(cfn, aws.DefaultWaiterConfig())
}

// NewManagerWithWaiter creates a manager with an explicit waiter
// configuration.
func NewManagerWithWaiter(cfn aws.CloudFormationOperations, waiter aws.WaiterConfig) *Manager {
	return &Manager{cfn: cfn, waiter: waiter}
}

// Status returns the current state of a stack. A stack the provider does
// not know about is a successful answer carrying StackStatusDoesNotExist,
// not an error; only a failed query returns an error.
func (m *Manager) Status(ctx context.Context, stackName string) (*aws.Stack, error) {
	stack, err := m.cfn.DescribeStack(ctx, stackName)
	if err != nil {
		if aws.IsStackNotFound(err) {
			return &aws.Stack{
				Name:   stackName,
				Status: aws.StackStatusDoesNotExist,
			}, nil
		}
		return nil, err
	}
	return stack, nil
}

// DeleteResult reports a stack deletion request. Warnings carry non-fatal
// conditions; the deletion request itself succeeded whenever the error is
// nil.
type DeleteResult struct {
	StackName   string
	FinalStatus aws.StackStatus
	Warnings    []string
}

// Delete requests deletion of a stack. With wait set it polls until the
// stack reaches a terminal state or disappears. Exhausting the polling
// budget, or the caller's context being cancelled, attaches a warning
// instead of failing: the deletion keeps running provider-side.
func (m *Manager) Delete(ctx context.Context, stackName string, wait bool) (*DeleteResult, error) {
	result := &DeleteResult{StackName: stackName}

	if err := m.cfn.DeleteStack(ctx, stackName); err != nil {
		return nil, err
	}

	log.WithField("stack", stackName).Info("stack deletion requested")

	if !wait {
		return result, nil
	}

	status, err := m.cfn.WaitForStackOperation(ctx, stackName, m.waiter)
	result.FinalStatus = status
	switch {
	case err == nil:
	case errors.Is(err, aws.ErrWaitTimeout):
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("timed out waiting for deletion of stack %s; the deletion is still running", stackName))
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("did not confirm deletion of stack %s; the deletion is still running", stackName))
	default:
		return nil, err
	}

	return result, nil
}
