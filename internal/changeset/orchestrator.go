/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package changeset drives the CloudFormation change-set workflow: validate
// parameter values against the catalogue template, submit a change set with
// a deterministic name, describe its planned changes and execute it.
package changeset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"

	"github.com/stackcat/stackcat/internal/aws"
	"github.com/stackcat/stackcat/internal/catalog"
	"github.com/stackcat/stackcat/internal/params"
)

// Type selects whether a change set creates a new stack or updates an
// existing one.
type Type string

const (
	TypeCreate Type = "CREATE"
	TypeUpdate Type = "UPDATE"
)

// defaultCapabilities is the fixed capability set attached to every change
// set. Catalogue templates routinely create IAM roles and named IAM
// resources.
var defaultCapabilities = []string{"CAPABILITY_IAM", "CAPABILITY_NAMED_IAM"}

// Name builds the deterministic change-set name for a stack and type. Two
// calls with the same arguments target the same provider-side change set.
func Name(stackName string, t Type) string {
	return fmt.Sprintf("%s-changeset-%s", stackName, strings.ToLower(string(t)))
}

// ErrChangeSetConflict indicates a change set with the deterministic name
// already exists and is not in a terminal FAILED state, so resubmitting
// would clobber live work.
var ErrChangeSetConflict = errors.New("change set already exists and is still in use")

// Orchestrator coordinates the template catalogue, parameter validation and
// the CloudFormation client for the change-set lifecycle.
type Orchestrator struct {
	store     *catalog.Store
	processor *catalog.Processor
	cfn       aws.CloudFormationOperations
	waiter    aws.WaiterConfig
}

// NewOrchestrator creates an orchestrator using the default waiter cadence.
func NewOrchestrator(store *catalog.Store, cfn aws.CloudFormationOperations) *Orchestrator {
	return NewOrchestratorWithWaiter(store, cfn, aws.DefaultWaiterConfig())
}

// NewOrchestratorWithWaiter creates an orchestrator with an explicit waiter
// configuration.
func NewOrchestratorWithWaiter(store *catalog.Store, cfn aws.CloudFormationOperations, waiter aws.WaiterConfig) *Orchestrator {
	return &Orchestrator{
		store:     store,
		processor: catalog.NewProcessor(),
		cfn:       cfn,
		waiter:    waiter,
	}
}

// CreateInput describes one change-set submission.
type CreateInput struct {
	ResourceType string
	StackName    string
	Type         Type

	// Parameters are the CloudFormation parameter values, validated
	// against the template's schema before anything is submitted.
	Parameters map[string]string

	// Variables, when non-nil, are applied to the raw template text as Go
	// template variables before submission.
	Variables map[string]any
}

// CreateResult reports the outcome of a change-set submission. When
// validation fails the result carries the full validation report and no
// change set was submitted.
type CreateResult struct {
	ChangeSetID   string
	ChangeSetName string
	StackName     string
	Type          Type
	Validation    params.Result
}

// Create validates parameter values and submits a change set. Validation
// failures return the result without error and without touching the
// provider. A name collision against a FAILED change set is treated as
// stale: the old change set is deleted and the submission retried once. A
// collision against any other state is surfaced as ErrChangeSetConflict.
func (o *Orchestrator) Create(ctx context.Context, input CreateInput) (*CreateResult, error) {
	result := &CreateResult{
		ChangeSetName: Name(input.StackName, input.Type),
		StackName:     input.StackName,
		Type:          input.Type,
	}

	doc, err := o.store.Read(input.ResourceType)
	if err != nil {
		return nil, err
	}

	schema, err := params.Extract(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to extract parameters for %s: %w", input.ResourceType, err)
	}

	result.Validation = params.Validate(schema, input.Parameters)
	if !result.Validation.Valid {
		return result, nil
	}

	body, err := o.store.ReadRaw(input.ResourceType)
	if err != nil {
		return nil, err
	}

	templateBody := string(body)
	if input.Variables != nil {
		templateBody, err = o.processor.Render(templateBody, input.Variables)
		if err != nil {
			return nil, fmt.Errorf("failed to preprocess template for %s: %w", input.ResourceType, err)
		}
	}

	parameters := make([]aws.Parameter, 0, len(input.Parameters))
	for _, name := range schema.Names() {
		if value, ok := input.Parameters[name]; ok {
			parameters = append(parameters, aws.Parameter{Key: name, Value: value})
		}
	}

	submit := aws.CreateChangeSetInput{
		StackName:     input.StackName,
		ChangeSetName: result.ChangeSetName,
		TemplateBody:  templateBody,
		Parameters:    parameters,
		Capabilities:  defaultCapabilities,
		ChangeSetType: string(input.Type),
	}

	id, err := o.cfn.CreateChangeSet(ctx, submit)
	if aws.IsChangeSetAlreadyExists(err) {
		id, err = o.resubmitStale(ctx, submit)
	}
	if err != nil {
		return nil, err
	}

	result.ChangeSetID = id
	return result, nil
}

// resubmitStale handles a deterministic-name collision. Only a change set
// resting in FAILED may be replaced; anything else is live and belongs to
// another caller.
func (o *Orchestrator) resubmitStale(ctx context.Context, submit aws.CreateChangeSetInput) (string, error) {
	existing, err := o.cfn.DescribeChangeSet(ctx, submit.ChangeSetName, submit.StackName)
	if err != nil {
		return "", err
	}

	if existing.Status != aws.ChangeSetStatusFailed {
		return "", fmt.Errorf("change set %s for stack %s is in status %s: %w",
			submit.ChangeSetName, submit.StackName, existing.Status, ErrChangeSetConflict)
	}

	log.WithField("change_set", submit.ChangeSetName).WithField("stack", submit.StackName).
		Info("replacing stale failed change set")

	if err := o.cfn.DeleteChangeSet(ctx, submit.ChangeSetName, submit.StackName); err != nil {
		return "", err
	}

	return o.cfn.CreateChangeSet(ctx, submit)
}

// Describe fetches the current state of a change set, including its full
// list of planned resource changes.
func (o *Orchestrator) Describe(ctx context.Context, changeSetName, stackName string) (*aws.ChangeSet, error) {
	return o.cfn.DescribeChangeSet(ctx, changeSetName, stackName)
}

// ExecuteResult reports a change-set execution. Warnings carry non-fatal
// conditions such as an unconfirmed completion; execution itself started
// successfully whenever the error is nil.
type ExecuteResult struct {
	ChangeSetName string
	StackName     string
	FinalStatus   aws.StackStatus
	Warnings      []string
}

// Execute triggers execution of a change set. With wait set it polls stack
// status until a terminal state. Running out of polling attempts, or the
// caller's context being cancelled, attaches a warning instead of failing:
// the stack operation keeps running either way.
func (o *Orchestrator) Execute(ctx context.Context, changeSetName, stackName string, wait bool) (*ExecuteResult, error) {
	result := &ExecuteResult{
		ChangeSetName: changeSetName,
		StackName:     stackName,
	}

	if err := o.cfn.ExecuteChangeSet(ctx, changeSetName, stackName); err != nil {
		return nil, err
	}

	if !wait {
		return result, nil
	}

	status, err := o.cfn.WaitForStackOperation(ctx, stackName, o.waiter)
	result.FinalStatus = status
	switch {
	case err == nil:
	case errors.Is(err, aws.ErrWaitTimeout):
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("timed out waiting for stack %s; the operation is still running", stackName))
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("did not confirm completion of stack %s; the operation is still running", stackName))
	default:
		return nil, err
	}

	return result, nil
}
