/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package ops

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/stackcat/stackcat/internal/aws"
	"github.com/stackcat/stackcat/internal/catalog"
	"github.com/stackcat/stackcat/internal/changeset"
	"github.com/stackcat/stackcat/internal/lifecycle"
	"github.com/stackcat/stackcat/internal/params"
)

// Service is the operation surface exposed to the CLI command layer.
type Service interface {
	ListResources(ctx context.Context) *ListResourcesResult
	TemplateInfo(ctx context.Context, resourceType string) *TemplateInfoResult
	TemplateParameters(ctx context.Context, resourceType string) *TemplateParametersResult
	ValidateParameters(ctx context.Context, resourceType string, values map[string]string) *ValidateParametersResult
	CreateChangeSet(ctx context.Context, req CreateChangeSetRequest) *CreateChangeSetResult
	DescribeChangeSet(ctx context.Context, changeSetName, stackName string) *DescribeChangeSetResult
	ExecuteChangeSet(ctx context.Context, changeSetName, stackName string, wait bool) *ExecuteChangeSetResult
	StackStatus(ctx context.Context, stackName string) *StackStatusResult
	DeleteStack(ctx context.Context, stackName string, wait bool) *DeleteStackResult
}

// DefaultService wires the catalogue, the change-set orchestrator and the
// stack lifecycle behind the envelope contract.
type DefaultService struct {
	store        *catalog.Store
	orchestrator *changeset.Orchestrator
	lifecycle    *lifecycle.Manager
}

var _ Service = (*DefaultService)(nil)

// NewService creates a service using the default waiter cadence.
func NewService(store *catalog.Store, cfn aws.CloudFormationOperations) *DefaultService {
	return NewServiceWithWaiter(store, cfn, aws.DefaultWaiterConfig())
}

// NewServiceWithWaiter creates a service with an explicit waiter
// configuration for the blocking execute/delete waits.
func NewServiceWithWaiter(store *catalog.Store, cfn aws.CloudFormationOperations, waiter aws.WaiterConfig) *DefaultService {
	return &DefaultService{
		store:        store,
		orchestrator: changeset.NewOrchestratorWithWaiter(store, cfn, waiter),
		lifecycle:    lifecycle.NewManagerWithWaiter(cfn, waiter),
	}
}

// ListResources lists the resource types available in the catalogue.
func (s *DefaultService) ListResources(ctx context.Context) *ListResourcesResult {
	resources, err := s.store.Repository().ListResourceTypes()
	if err != nil {
		log.WithError(err).Error("failed to list resource types")
		return &ListResourcesResult{Error: err.Error()}
	}

	return &ListResourcesResult{
		Success:   true,
		Resources: resources,
		Count:     len(resources),
		Message:   fmt.Sprintf("Found %d resource types available", len(resources)),
	}
}

// TemplateInfo summarises the template for a resource type: description
// plus the names of its parameters, resources and outputs.
func (s *DefaultService) TemplateInfo(ctx context.Context, resourceType string) *TemplateInfoResult {
	doc, err := s.store.Read(resourceType)
	if err != nil {
		log.WithError(err).WithField("resource_type", resourceType).Error("failed to read template")
		return &TemplateInfoResult{Error: err.Error()}
	}

	return &TemplateInfoResult{
		Success:      true,
		ResourceType: resourceType,
		Description:  doc.Get("Description").StringValue("No description available"),
		Parameters:   doc.Get("Parameters").Keys(),
		Resources:    doc.Get("Resources").Keys(),
		Outputs:      doc.Get("Outputs").Keys(),
	}
}

// TemplateParameters returns the full parameter schema for a resource type.
func (s *DefaultService) TemplateParameters(ctx context.Context, resourceType string) *TemplateParametersResult {
	schema, err := s.readSchema(resourceType)
	if err != nil {
		log.WithError(err).WithField("resource_type", resourceType).Error("failed to extract parameters")
		return &TemplateParametersResult{Error: err.Error()}
	}

	details := make(map[string]ParameterDetail, len(schema))
	for name, def := range schema {
		details[name] = ParameterDetail{
			Type:                  def.Type,
			Description:           def.Description,
			Default:               def.Default,
			AllowedValues:         def.AllowedValues,
			AllowedPattern:        def.AllowedPattern,
			ConstraintDescription: def.ConstraintDescription,
			MinLength:             def.MinLength,
			MaxLength:             def.MaxLength,
			MinValue:              def.MinValue,
			MaxValue:              def.MaxValue,
			NoEcho:                def.NoEcho,
		}
	}

	return &TemplateParametersResult{
		Success:            true,
		ResourceType:       resourceType,
		Parameters:         details,
		RequiredParameters: schema.RequiredNames(),
	}
}

// ValidateParameters checks supplied values against the template's schema.
// A failed validation is still a successful operation; Valid carries the
// verdict and Errors every violation found.
func (s *DefaultService) ValidateParameters(ctx context.Context, resourceType string, values map[string]string) *ValidateParametersResult {
	schema, err := s.readSchema(resourceType)
	if err != nil {
		log.WithError(err).WithField("resource_type", resourceType).Error("failed to extract parameters")
		return &ValidateParametersResult{Error: err.Error()}
	}

	result := params.Validate(schema, values)
	message := "Parameters are valid"
	if !result.Valid {
		message = "Parameter validation failed"
	}

	return &ValidateParametersResult{
		Success:  true,
		Valid:    result.Valid,
		Errors:   result.Errors,
		Warnings: result.Warnings,
		Message:  message,
	}
}

// CreateChangeSet validates and submits a change set for a stack.
func (s *DefaultService) CreateChangeSet(ctx context.Context, req CreateChangeSetRequest) *CreateChangeSetResult {
	csType := changeset.Type(strings.ToUpper(req.ChangeSetType))
	if csType == "" {
		csType = changeset.TypeCreate
	}
	if csType != changeset.TypeCreate && csType != changeset.TypeUpdate {
		return &CreateChangeSetResult{Error: fmt.Sprintf("invalid change set type %q: must be CREATE or UPDATE", req.ChangeSetType)}
	}

	created, err := s.orchestrator.Create(ctx, changeset.CreateInput{
		ResourceType: req.ResourceType,
		StackName:    req.StackName,
		Type:         csType,
		Parameters:   req.Parameters,
		Variables:    req.Variables,
	})
	if err != nil {
		log.WithError(err).WithField("stack", req.StackName).Error("failed to create change set")
		return &CreateChangeSetResult{Error: err.Error()}
	}

	if !created.Validation.Valid {
		return &CreateChangeSetResult{
			Success:  true,
			Valid:    false,
			Errors:   created.Validation.Errors,
			Warnings: created.Validation.Warnings,
			Message:  "Parameter validation failed",
		}
	}

	return &CreateChangeSetResult{
		Success:       true,
		Valid:         true,
		ChangeSetID:   created.ChangeSetID,
		ChangeSetName: created.ChangeSetName,
		StackName:     created.StackName,
		Warnings:      created.Validation.Warnings,
		Message:       "Change set created successfully. Review with describe-changeset before executing.",
	}
}

// DescribeChangeSet returns a change set and its planned resource changes.
func (s *DefaultService) DescribeChangeSet(ctx context.Context, changeSetName, stackName string) *DescribeChangeSetResult {
	cs, err := s.orchestrator.Describe(ctx, changeSetName, stackName)
	if err != nil {
		log.WithError(err).WithField("change_set", changeSetName).Error("failed to describe change set")
		return &DescribeChangeSetResult{Error: err.Error()}
	}

	changes := make([]ChangeSummary, 0, len(cs.Changes))
	for _, c := range cs.Changes {
		changes = append(changes, ChangeSummary{
			Action:       c.Action,
			LogicalID:    c.LogicalID,
			PhysicalID:   c.PhysicalID,
			ResourceType: c.ResourceType,
			Replacement:  c.Replacement,
			Scope:        c.Scope,
		})
	}

	return &DescribeChangeSetResult{
		Success:       true,
		ChangeSetName: changeSetName,
		StackName:     stackName,
		Status:        cs.Status,
		StatusReason:  cs.StatusReason,
		Changes:       changes,
		ChangesCount:  len(changes),
		Parameters:    parameterValues(cs.Parameters),
	}
}

// ExecuteChangeSet starts execution of a change set, optionally waiting
// for the stack to settle.
func (s *DefaultService) ExecuteChangeSet(ctx context.Context, changeSetName, stackName string, wait bool) *ExecuteChangeSetResult {
	executed, err := s.orchestrator.Execute(ctx, changeSetName, stackName, wait)
	if err != nil {
		log.WithError(err).WithField("change_set", changeSetName).Error("failed to execute change set")
		return &ExecuteChangeSetResult{Error: err.Error()}
	}

	result := &ExecuteChangeSetResult{
		Success:     true,
		StackName:   stackName,
		FinalStatus: string(executed.FinalStatus),
		Message:     fmt.Sprintf("Change set %s execution started", changeSetName),
	}
	if len(executed.Warnings) > 0 {
		result.Warning = strings.Join(executed.Warnings, "; ")
	}
	return result
}

// StackStatus returns the current state of a stack. A missing stack is a
// successful result with status DOES_NOT_EXIST.
func (s *DefaultService) StackStatus(ctx context.Context, stackName string) *StackStatusResult {
	stack, err := s.lifecycle.Status(ctx, stackName)
	if err != nil {
		log.WithError(err).WithField("stack", stackName).Error("failed to get stack status")
		return &StackStatusResult{Error: err.Error()}
	}

	result := &StackStatusResult{
		Success:      true,
		StackName:    stack.Name,
		Status:       string(stack.Status),
		StatusReason: stack.StatusReason,
	}

	if stack.Status == aws.StackStatusDoesNotExist {
		result.Message = fmt.Sprintf("Stack %s does not exist", stackName)
		return result
	}

	if stack.CreatedTime != nil {
		result.CreationTime = stack.CreatedTime.Format(time.RFC3339)
	}
	if stack.UpdatedTime != nil {
		result.LastUpdatedTime = stack.UpdatedTime.Format(time.RFC3339)
	}
	for _, o := range stack.Outputs {
		result.Outputs = append(result.Outputs, OutputValue{Key: o.Key, Value: o.Value, Description: o.Description})
	}
	result.Parameters = parameterValues(stack.Parameters)

	return result
}

// DeleteStack requests deletion of a stack, optionally waiting for the
// deletion to settle.
func (s *DefaultService) DeleteStack(ctx context.Context, stackName string, wait bool) *DeleteStackResult {
	deleted, err := s.lifecycle.Delete(ctx, stackName, wait)
	if err != nil {
		log.WithError(err).WithField("stack", stackName).Error("failed to delete stack")
		return &DeleteStackResult{Error: err.Error()}
	}

	result := &DeleteStackResult{
		Success:     true,
		StackName:   stackName,
		FinalStatus: string(deleted.FinalStatus),
		Message:     fmt.Sprintf("Stack %s deletion initiated", stackName),
	}
	if deleted.FinalStatus == aws.StackStatusDeleteComplete {
		result.Message = fmt.Sprintf("Stack %s deleted successfully", stackName)
	}
	if len(deleted.Warnings) > 0 {
		result.Warning = strings.Join(deleted.Warnings, "; ")
	}
	return result
}

func (s *DefaultService) readSchema(resourceType string) (params.Schema, error) {
	doc, err := s.store.Read(resourceType)
	if err != nil {
		return nil, err
	}
	return params.Extract(doc)
}

func parameterValues(in []aws.Parameter) []ParameterValue {
	if len(in) == 0 {
		return nil
	}
	out := make([]ParameterValue, len(in))
	for i, p := range in {
		out[i] = ParameterValue{Key: p.Key, Value: p.Value}
	}
	return out
}
