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

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <resource-type>",
	Short: "Show template information for a resource type",
	Long: `Show the template behind a resource type: its description and the names
of its parameters, resources and outputs.

Examples:
  stackcat info s3
  stackcat info ec2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := getService(cmd)
		if err != nil {
			return err
		}

		result := svc.TemplateInfo(cmd.Context(), args[0])
		return emit(cmd, result.Success, result.Error, result, func() string {
			styles := NewStyles(ShouldUseColour())

			var out strings.Builder
			fmt.Fprintf(&out, "%s %s\n", styles.Heading.Render("Template:"), result.ResourceType)
			fmt.Fprintf(&out, "%s %s\n", styles.Key.Render("Description:"), result.Description)
			writeNameSection(&out, styles, "Parameters", result.Parameters)
			writeNameSection(&out, styles, "Resources", result.Resources)
			writeNameSection(&out, styles, "Outputs", result.Outputs)
			return out.String()
		})
	},
}

func writeNameSection(out *strings.Builder, styles *Styles, title string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s\n", styles.Heading.Render(title+":"))
	for _, name := range names {
		fmt.Fprintf(out, "  %s\n", name)
	}
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
