package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alpacahq/holidays/cmd/check"
	"github.com/alpacahq/holidays/cmd/export"
	"github.com/alpacahq/holidays/cmd/jurisdictions"
	"github.com/alpacahq/holidays/cmd/list"
)

// Execute builds the command tree and executes commands.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	// c is the root command.
	c := &cobra.Command{
		Use:   "holidays",
		Short: "Evaluate the holiday calendars of countries and markets",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print information regarding usage.
			return cmd.Usage()
		},
		SilenceErrors: true,
	}

	c.AddCommand(list.Cmd)
	c.AddCommand(check.Cmd)
	c.AddCommand(export.Cmd)
	c.AddCommand(jurisdictions.Cmd)

	return c
}
