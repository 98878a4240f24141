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

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List resource types available in the template catalogue",
	Long: `List all resource types available in the template catalogue.

Each immediate subdirectory of the catalogue is one resource type (e.g.
s3, ec2, alb) holding a CloudFormation template.

Examples:
  stackcat list`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := getService(cmd)
		if err != nil {
			return err
		}

		result := svc.ListResources(cmd.Context())
		return emit(cmd, result.Success, result.Error, result, func() string {
			styles := NewStyles(ShouldUseColour())

			var out strings.Builder
			out.WriteString(styles.Heading.Render("Resource types") + "\n")
			for _, resource := range result.Resources {
				fmt.Fprintf(&out, "  %s\n", resource)
			}
			out.WriteString(styles.Subtle.Render(result.Message) + "\n")
			return out.String()
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
