/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status <stack-name>",
	Short: "Show the current status of a stack",
	Long: `Show the current status of a CloudFormation stack: its state, timing,
outputs and current parameter values.

A stack AWS does not know about is a normal answer (DOES_NOT_EXIST), not
an error; only a failed query fails the command.

Examples:
  stackcat status logs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := getService(cmd)
		if err != nil {
			return err
		}

		result := svc.StackStatus(cmd.Context(), args[0])
		return emit(cmd, result.Success, result.Error, result, func() string {
			styles := NewStyles(ShouldUseColour())

			var out strings.Builder
			fmt.Fprintf(&out, "%s %s\n", styles.Heading.Render("Stack:"), result.StackName)
			fmt.Fprintf(&out, "%s %s\n", styles.Key.Render("Status:"), styles.StatusStyle(result.Status).Render(result.Status))
			if result.StatusReason != "" {
				fmt.Fprintf(&out, "%s %s\n", styles.Key.Render("Reason:"), result.StatusReason)
			}
			if result.Message != "" {
				out.WriteString(styles.Subtle.Render(result.Message) + "\n")
			}
			if result.CreationTime != "" {
				fmt.Fprintf(&out, "%s %s\n", styles.Key.Render("Created:"), result.CreationTime)
			}
			if result.LastUpdatedTime != "" {
				fmt.Fprintf(&out, "%s %s\n", styles.Key.Render("Updated:"), result.LastUpdatedTime)
			}

			if len(result.Parameters) > 0 {
				fmt.Fprintf(&out, "\n%s\n", styles.Heading.Render("Parameters:"))
				for _, param := range result.Parameters {
					fmt.Fprintf(&out, "  %s: %s\n", styles.Key.Render(param.Key), param.Value)
				}
			}
			if len(result.Outputs) > 0 {
				fmt.Fprintf(&out, "\n%s\n", styles.Heading.Render("Outputs:"))
				for _, output := range result.Outputs {
					fmt.Fprintf(&out, "  %s: %s", styles.Key.Render(output.Key), output.Value)
					if output.Description != "" {
						fmt.Fprintf(&out, "  %s", styles.Subtle.Render(output.Description))
					}
					out.WriteString("\n")
				}
			}
			return out.String()
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
