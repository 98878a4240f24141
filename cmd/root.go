/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stackcat",
	Short: "Provision AWS infrastructure from a catalogue of CloudFormation templates",
	Long: `Stackcat provisions AWS infrastructure from a version-controlled catalogue
of pre-written CloudFormation templates. Each subdirectory of the catalogue
is one resource type holding a template.

Stackcat resolves the template for a resource type, derives and validates
the parameters it requires, and drives the create/update/delete lifecycle
of a stack through CloudFormation change sets: create a change set, review
the planned resource changes, then execute.

Examples:
  stackcat list                                  # resource types in the catalogue
  stackcat parameters s3                         # parameter schema of the s3 template
  stackcat changeset create s3 logs -P BucketName=logs
  stackcat changeset describe logs
  stackcat changeset execute logs --wait
  stackcat status logs
  stackcat delete logs`,
}

// Root returns the root command for execution by main.
func Root() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is stackcat.yaml)")
	rootCmd.PersistentFlags().String("catalogue", "", "template catalogue directory (overrides config)")
	rootCmd.PersistentFlags().String("region", "", "AWS region (overrides config)")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile (overrides config)")
	rootCmd.PersistentFlags().Bool("json", false, "emit raw JSON envelopes instead of formatted output")
}
