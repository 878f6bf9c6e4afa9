package main

import (
	"github.com/spf13/cobra"
)

type rootFlagsDefinition struct {
	Output string
}

var rootFlags rootFlagsDefinition

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "recoveryctl <command> [options]",
		Short:         "Classify payment failures and replay their recovery actions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVarP(
		&rootFlags.Output,
		"output",
		"o",
		"text",
		"Output format: text or json",
	)

	rootCmd.AddCommand(newClassifyCommand())
	rootCmd.AddCommand(newSimulateCommand())
	rootCmd.AddCommand(newCodesCommand())

	return rootCmd
}
