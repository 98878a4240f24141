/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackcat/stackcat/internal/changeset"
	"github.com/stackcat/stackcat/internal/ops"
	"github.com/stackcat/stackcat/internal/prompt"
)

// changesetCmd groups the change-set workflow commands
var changesetCmd = &cobra.Command{
	Use:   "changeset",
	Short: "Create, review and execute CloudFormation change sets",
	Long: `Work with CloudFormation change sets: create a change set from a
catalogue template, review its planned resource changes, then execute it.

Change-set names are deterministic: <stack-name>-changeset-<type>. A second
create for the same stack and type targets the same change set, so a stale
FAILED change set is replaced automatically while a live one is reported
as a conflict.`,
}

// changesetCreateCmd represents the changeset create command
var changesetCreateCmd = &cobra.Command{
	Use:   "create <resource-type> <stack-name>",
	Short: "Create a change set for a stack from a catalogue template",
	Long: `Create a change set for a stack from the template of a resource type.

Parameter values are validated against the template's schema first; an
invalid set is reported in full and nothing is submitted to AWS.

Examples:
  stackcat changeset create s3 logs -P BucketName=logs
  stackcat changeset create s3 logs -P BucketName=logs --type UPDATE
  stackcat changeset create app web -P Env=prod --var team=platform`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, _ := cmd.Flags().GetStringArray("param")
		values, err := parseKeyValues(pairs)
		if err != nil {
			return err
		}

		varPairs, _ := cmd.Flags().GetStringArray("var")
		var variables map[string]any
		if len(varPairs) > 0 {
			parsed, err := parseKeyValues(varPairs)
			if err != nil {
				return err
			}
			variables = make(map[string]any, len(parsed))
			for k, v := range parsed {
				variables[k] = v
			}
		}

		csType, _ := cmd.Flags().GetString("type")

		svc, err := getService(cmd)
		if err != nil {
			return err
		}

		result := svc.CreateChangeSet(cmd.Context(), ops.CreateChangeSetRequest{
			ResourceType:  args[0],
			StackName:     args[1],
			ChangeSetType: csType,
			Parameters:    values,
			Variables:     variables,
		})
		err = emit(cmd, result.Success, result.Error, result, func() string {
			styles := NewStyles(ShouldUseColour())

			var out strings.Builder
			for _, msg := range result.Errors {
				fmt.Fprintf(&out, "%s %s\n", styles.Error.Render("error:"), msg)
			}
			for _, msg := range result.Warnings {
				fmt.Fprintf(&out, "%s %s\n", styles.Warning.Render("warning:"), msg)
			}
			if !result.Valid {
				out.WriteString(styles.Error.Render(result.Message) + "\n")
				return out.String()
			}
			fmt.Fprintf(&out, "%s %s\n", styles.Key.Render("Change set:"), result.ChangeSetName)
			fmt.Fprintf(&out, "%s %s\n", styles.Key.Render("Id:"), result.ChangeSetID)
			out.WriteString(styles.Success.Render(result.Message) + "\n")
			return out.String()
		})
		if err != nil {
			return err
		}

		if !result.Valid {
			return fmt.Errorf("parameter validation failed with %d error(s)", len(result.Errors))
		}
		return nil
	},
}

// changesetDescribeCmd represents the changeset describe command
var changesetDescribeCmd = &cobra.Command{
	Use:   "describe <stack-name> [change-set-name]",
	Short: "Show the planned resource changes of a change set",
	Long: `Show a change set and its full list of planned resource changes.

Without an explicit change-set name the deterministic name for the given
--type is used.

Examples:
  stackcat changeset describe logs
  stackcat changeset describe logs --type UPDATE
  stackcat changeset describe logs logs-changeset-create`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		stackName := args[0]
		changeSetName := defaultChangeSetName(cmd, args)

		svc, err := getService(cmd)
		if err != nil {
			return err
		}

		result := svc.DescribeChangeSet(cmd.Context(), changeSetName, stackName)
		return emit(cmd, result.Success, result.Error, result, func() string {
			styles := NewStyles(ShouldUseColour())

			var out strings.Builder
			fmt.Fprintf(&out, "%s %s\n", styles.Heading.Render("Change set:"), result.ChangeSetName)
			fmt.Fprintf(&out, "%s %s\n", styles.Key.Render("Stack:"), result.StackName)
			fmt.Fprintf(&out, "%s %s\n", styles.Key.Render("Status:"), styles.StatusStyle(result.Status).Render(result.Status))
			if result.StatusReason != "" {
				fmt.Fprintf(&out, "%s %s\n", styles.Key.Render("Reason:"), result.StatusReason)
			}

			if len(result.Changes) > 0 {
				fmt.Fprintf(&out, "\n%s\n", styles.Heading.Render("Changes:"))
				for _, change := range result.Changes {
					fmt.Fprintf(&out, "  %s %s  %s", styles.ActionSymbol(change.Action), change.LogicalID, styles.Subtle.Render(change.ResourceType))
					if change.Replacement == "True" || change.Replacement == "Conditional" {
						fmt.Fprintf(&out, "  %s", styles.Warning.Render("replacement: "+change.Replacement))
					}
					out.WriteString("\n")
				}
			}
			fmt.Fprintf(&out, "\n%d change(s)\n", result.ChangesCount)
			return out.String()
		})
	},
}

// changesetExecuteCmd represents the changeset execute command
var changesetExecuteCmd = &cobra.Command{
	Use:   "execute <stack-name> [change-set-name]",
	Short: "Execute a change set",
	Long: `Execute a change set, applying its planned changes to the stack.

With --wait the command polls stack status until the operation reaches a
terminal state. Running out of patience is reported as a warning, not a
failure: the stack operation keeps running in AWS.

Examples:
  stackcat changeset execute logs
  stackcat changeset execute logs --wait
  stackcat changeset execute logs logs-changeset-update --wait --yes`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		stackName := args[0]
		changeSetName := defaultChangeSetName(cmd, args)
		wait, _ := cmd.Flags().GetBool("wait")

		if skip, _ := cmd.Flags().GetBool("yes"); !skip {
			confirmed, err := prompt.Confirm(fmt.Sprintf("Apply change set %s to stack %s?", changeSetName, stackName))
			if err != nil {
				return err
			}
			if !confirmed {
				cmd.Println("Execution cancelled")
				return nil
			}
		}

		svc, err := getService(cmd)
		if err != nil {
			return err
		}

		result := svc.ExecuteChangeSet(cmd.Context(), changeSetName, stackName, wait)
		return emit(cmd, result.Success, result.Error, result, func() string {
			styles := NewStyles(ShouldUseColour())

			var out strings.Builder
			out.WriteString(styles.Success.Render(result.Message) + "\n")
			if result.FinalStatus != "" {
				fmt.Fprintf(&out, "%s %s\n", styles.Key.Render("Stack status:"), styles.StatusStyle(result.FinalStatus).Render(result.FinalStatus))
			}
			if result.Warning != "" {
				fmt.Fprintf(&out, "%s %s\n", styles.Warning.Render("warning:"), result.Warning)
			}
			return out.String()
		})
	},
}

// defaultChangeSetName returns the explicit change-set name argument, or
// the deterministic name for the --type flag.
func defaultChangeSetName(cmd *cobra.Command, args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	csType, _ := cmd.Flags().GetString("type")
	return changeset.Name(args[0], changeset.Type(strings.ToUpper(csType)))
}

func init() {
	rootCmd.AddCommand(changesetCmd)
	changesetCmd.AddCommand(changesetCreateCmd)
	changesetCmd.AddCommand(changesetDescribeCmd)
	changesetCmd.AddCommand(changesetExecuteCmd)

	changesetCreateCmd.Flags().StringArrayP("param", "P", nil, "parameter value as key=value (repeatable)")
	changesetCreateCmd.Flags().StringArray("var", nil, "template variable as key=value (repeatable)")
	changesetCreateCmd.Flags().String("type", "CREATE", "change set type: CREATE or UPDATE")

	changesetDescribeCmd.Flags().String("type", "CREATE", "change set type used for the deterministic name")

	changesetExecuteCmd.Flags().String("type", "CREATE", "change set type used for the deterministic name")
	changesetExecuteCmd.Flags().Bool("wait", false, "wait for the stack operation to complete")
	changesetExecuteCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}
