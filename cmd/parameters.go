/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// parametersCmd represents the parameters command
var parametersCmd = &cobra.Command{
	Use:   "parameters <resource-type>",
	Short: "Show the parameter schema of a template",
	Long: `Show the full parameter schema of the template for a resource type:
types, defaults, allowed values, constraints and which parameters are
required (those without a default).

Examples:
  stackcat parameters s3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := getService(cmd)
		if err != nil {
			return err
		}

		result := svc.TemplateParameters(cmd.Context(), args[0])
		return emit(cmd, result.Success, result.Error, result, func() string {
			styles := NewStyles(ShouldUseColour())

			required := make(map[string]bool, len(result.RequiredParameters))
			for _, name := range result.RequiredParameters {
				required[name] = true
			}

			names := make([]string, 0, len(result.Parameters))
			for name := range result.Parameters {
				names = append(names, name)
			}
			sort.Strings(names)

			var out strings.Builder
			fmt.Fprintf(&out, "%s %s\n", styles.Heading.Render("Parameters of"), result.ResourceType)
			for _, name := range names {
				detail := result.Parameters[name]

				marker := ""
				if required[name] {
					marker = styles.Warning.Render(" (required)")
				}
				fmt.Fprintf(&out, "\n%s%s  %s\n", styles.Key.Render(name), marker, styles.Subtle.Render(detail.Type))

				if detail.Description != "" {
					fmt.Fprintf(&out, "  %s\n", detail.Description)
				}
				if detail.Default != nil {
					fmt.Fprintf(&out, "  Default: %q\n", *detail.Default)
				}
				if len(detail.AllowedValues) > 0 {
					fmt.Fprintf(&out, "  Allowed values: %s\n", strings.Join(detail.AllowedValues, ", "))
				}
				if detail.AllowedPattern != "" {
					fmt.Fprintf(&out, "  Allowed pattern: %s\n", detail.AllowedPattern)
				}
				if detail.ConstraintDescription != "" {
					fmt.Fprintf(&out, "  Constraint: %s\n", detail.ConstraintDescription)
				}
				if detail.MinLength != nil || detail.MaxLength != nil {
					fmt.Fprintf(&out, "  Length: %s\n", boundsString(intBound(detail.MinLength), intBound(detail.MaxLength)))
				}
				if detail.MinValue != nil || detail.MaxValue != nil {
					fmt.Fprintf(&out, "  Range: %s\n", boundsString(floatBound(detail.MinValue), floatBound(detail.MaxValue)))
				}
				if detail.NoEcho {
					fmt.Fprintf(&out, "  %s\n", styles.Subtle.Render("NoEcho: value is masked by CloudFormation"))
				}
			}
			return out.String()
		})
	},
}

func intBound(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

func floatBound(v *float64) string {
	if v == nil {
		return ""
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", *v), "0"), ".")
}

func boundsString(min, max string) string {
	switch {
	case min != "" && max != "":
		return fmt.Sprintf("%s to %s", min, max)
	case min != "":
		return fmt.Sprintf("at least %s", min)
	default:
		return fmt.Sprintf("at most %s", max)
	}
}

func init() {
	rootCmd.AddCommand(parametersCmd)
}
