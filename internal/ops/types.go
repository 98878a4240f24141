/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package ops is the tool-invocation boundary of the provisioning core.
// Every operation returns a uniform envelope carrying success, the
// operation-specific payload and, on failure, a human-readable error
// message. Callers consume the envelope; errors never escape this layer.
package ops

// ListResourcesResult lists the resource types available in the catalogue.
type ListResourcesResult struct {
	Success   bool     `json:"success"`
	Resources []string `json:"resources,omitempty"`
	Count     int      `json:"count"`
	Message   string   `json:"message,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// TemplateInfoResult summarises one catalogue template.
type TemplateInfoResult struct {
	Success      bool     `json:"success"`
	ResourceType string   `json:"resource_type,omitempty"`
	Description  string   `json:"description,omitempty"`
	Parameters   []string `json:"parameters,omitempty"`
	Resources    []string `json:"resources,omitempty"`
	Outputs      []string `json:"outputs,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// ParameterDetail describes one template parameter in the envelope shape.
type ParameterDetail struct {
	Type                  string   `json:"type"`
	Description           string   `json:"description"`
	Default               *string  `json:"default"`
	AllowedValues         []string `json:"allowed_values"`
	AllowedPattern        string   `json:"allowed_pattern,omitempty"`
	ConstraintDescription string   `json:"constraint_description,omitempty"`
	MinLength             *int     `json:"min_length,omitempty"`
	MaxLength             *int     `json:"max_length,omitempty"`
	MinValue              *float64 `json:"min_value,omitempty"`
	MaxValue              *float64 `json:"max_value,omitempty"`
	NoEcho                bool     `json:"no_echo"`
}

// TemplateParametersResult carries the full parameter schema of a template.
type TemplateParametersResult struct {
	Success            bool                       `json:"success"`
	ResourceType       string                     `json:"resource_type,omitempty"`
	Parameters         map[string]ParameterDetail `json:"parameters,omitempty"`
	RequiredParameters []string                   `json:"required_parameters,omitempty"`
	Error              string                     `json:"error,omitempty"`
}

// ValidateParametersResult reports a validation run. Success means the
// validation itself ran; Valid reports its verdict.
type ValidateParametersResult struct {
	Success  bool     `json:"success"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Message  string   `json:"message,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// CreateChangeSetRequest describes one change-set submission at the
// operation boundary.
type CreateChangeSetRequest struct {
	ResourceType  string            `json:"resource_type"`
	StackName     string            `json:"stack_name"`
	ChangeSetType string            `json:"change_set_type"`
	Parameters    map[string]string `json:"parameters"`
	Variables     map[string]any    `json:"variables,omitempty"`
}

// CreateChangeSetResult reports a change-set submission. When parameter
// validation fails the result is still Success with Valid false and the
// full violation list; no change set was submitted.
type CreateChangeSetResult struct {
	Success       bool     `json:"success"`
	Valid         bool     `json:"valid"`
	ChangeSetID   string   `json:"change_set_id,omitempty"`
	ChangeSetName string   `json:"change_set_name,omitempty"`
	StackName     string   `json:"stack_name,omitempty"`
	Errors        []string `json:"errors,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
	Message       string   `json:"message,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// ChangeSummary is one planned resource change in the envelope shape.
type ChangeSummary struct {
	Action       string   `json:"action"`
	LogicalID    string   `json:"logical_id"`
	PhysicalID   string   `json:"physical_id,omitempty"`
	ResourceType string   `json:"resource_type"`
	Replacement  string   `json:"replacement"`
	Scope        []string `json:"scope"`
}

// ParameterValue is a key/value pair as known to the provider.
type ParameterValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// OutputValue is one stack output in the envelope shape.
type OutputValue struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// DescribeChangeSetResult carries a change set and its planned changes.
type DescribeChangeSetResult struct {
	Success       bool             `json:"success"`
	ChangeSetName string           `json:"change_set_name,omitempty"`
	StackName     string           `json:"stack_name,omitempty"`
	Status        string           `json:"status,omitempty"`
	StatusReason  string           `json:"status_reason,omitempty"`
	Changes       []ChangeSummary  `json:"changes,omitempty"`
	ChangesCount  int              `json:"changes_count"`
	Parameters    []ParameterValue `json:"parameters,omitempty"`
	Error         string           `json:"error,omitempty"`
}

// ExecuteChangeSetResult reports a change-set execution. Warning carries
// non-fatal wait conditions; execution started whenever Success is true.
type ExecuteChangeSetResult struct {
	Success     bool   `json:"success"`
	StackName   string `json:"stack_name,omitempty"`
	FinalStatus string `json:"final_status,omitempty"`
	Message     string `json:"message,omitempty"`
	Warning     string `json:"warning,omitempty"`
	Error       string `json:"error,omitempty"`
}

// StackStatusResult carries the current state of a stack. A stack the
// provider does not know about is a successful result with the sentinel
// status DOES_NOT_EXIST.
type StackStatusResult struct {
	Success         bool             `json:"success"`
	StackName       string           `json:"stack_name,omitempty"`
	Status          string           `json:"status,omitempty"`
	StatusReason    string           `json:"status_reason,omitempty"`
	CreationTime    string           `json:"creation_time,omitempty"`
	LastUpdatedTime string           `json:"last_updated_time,omitempty"`
	Outputs         []OutputValue    `json:"outputs,omitempty"`
	Parameters      []ParameterValue `json:"parameters,omitempty"`
	Message         string           `json:"message,omitempty"`
	Error           string           `json:"error,omitempty"`
}

// DeleteStackResult reports a stack deletion request.
type DeleteStackResult struct {
	Success     bool   `json:"success"`
	StackName   string `json:"stack_name,omitempty"`
	FinalStatus string `json:"final_status,omitempty"`
	Message     string `json:"message,omitempty"`
	Warning     string `json:"warning,omitempty"`
	Error       string `json:"error,omitempty"`
}
