package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTailCommand(ctx *commandContext) *cobra.Command {
	var system bool

	cmd := &cobra.Command{
		Use:   "tail <service> <log>",
		Short: "Print the tail of one log file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.newClient()
			if err != nil {
				return err
			}

			content, err := c.FetchLog(cmd.Context(), ctx.kind(system), args[0], args[1])
			if err != nil {
				return err
			}

			// Content already carries its own newlines.
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&system, "system", false, "Fetch from the system catalog instead of the service catalog")
	return cmd
}
