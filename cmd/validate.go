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

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <resource-type>",
	Short: "Validate parameter values against a template's schema",
	Long: `Validate parameter values against the template's parameter schema
without touching AWS.

Every violation is reported, not just the first: missing required
parameters, values outside the allowed set and length bounds. Unknown
parameters are warnings, not errors.

Examples:
  stackcat validate s3 -P BucketName=logs -P Environment=prod`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, _ := cmd.Flags().GetStringArray("param")
		values, err := parseKeyValues(pairs)
		if err != nil {
			return err
		}

		svc, err := getService(cmd)
		if err != nil {
			return err
		}

		result := svc.ValidateParameters(cmd.Context(), args[0], values)
		err = emit(cmd, result.Success, result.Error, result, func() string {
			styles := NewStyles(ShouldUseColour())

			var out strings.Builder
			for _, msg := range result.Errors {
				fmt.Fprintf(&out, "%s %s\n", styles.Error.Render("error:"), msg)
			}
			for _, msg := range result.Warnings {
				fmt.Fprintf(&out, "%s %s\n", styles.Warning.Render("warning:"), msg)
			}
			if result.Valid {
				out.WriteString(styles.Success.Render(result.Message) + "\n")
			} else {
				out.WriteString(styles.Error.Render(result.Message) + "\n")
			}
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

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringArrayP("param", "P", nil, "parameter value as key=value (repeatable)")
}
