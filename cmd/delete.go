/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackcat/stackcat/internal/prompt"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <stack-name>",
	Short: "Delete a CloudFormation stack",
	Long: `Delete a CloudFormation stack.

With --wait the command polls until the stack is gone. Running out of
patience is reported as a warning, not a failure: the deletion keeps
running in AWS.

CAUTION: Deletion is destructive and cannot be undone. Always verify what
will be deleted before confirming.

Examples:
  stackcat delete logs
  stackcat delete logs --wait
  stackcat delete logs --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stackName := args[0]
		wait, _ := cmd.Flags().GetBool("wait")

		if skip, _ := cmd.Flags().GetBool("yes"); !skip {
			confirmed, err := prompt.Confirm(fmt.Sprintf("Delete stack %s? This cannot be undone.", stackName))
			if err != nil {
				return err
			}
			if !confirmed {
				cmd.Println("Deletion cancelled")
				return nil
			}
		}

		svc, err := getService(cmd)
		if err != nil {
			return err
		}

		result := svc.DeleteStack(cmd.Context(), stackName, wait)
		return emit(cmd, result.Success, result.Error, result, func() string {
			styles := NewStyles(ShouldUseColour())

			var out strings.Builder
			out.WriteString(styles.Success.Render(result.Message) + "\n")
			if result.Warning != "" {
				fmt.Fprintf(&out, "%s %s\n", styles.Warning.Render("warning:"), result.Warning)
			}
			return out.String()
		})
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().Bool("wait", false, "wait for the deletion to complete")
	deleteCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}
