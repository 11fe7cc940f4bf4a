package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var quietFlag bool
	var verboseFlag bool

	ctx := newCommandContext(&configFlag, &quietFlag, &verboseFlag)

	rootCmd := &cobra.Command{
		Use:           "avtool",
		Short:         "Inspect media files with external probing tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log diagnostic detail")

	rootCmd.AddCommand(newInfoCommand(ctx))
	rootCmd.AddCommand(newWebPCommand(ctx))
	rootCmd.AddCommand(newDepsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
