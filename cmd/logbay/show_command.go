package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"logbay/internal/catalog"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var system bool

	cmd := &cobra.Command{
		Use:   "show <service>",
		Short: "Show the logs exposed by one service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.newClient()
			if err != nil {
				return err
			}

			view, err := c.DescribeSource(cmd.Context(), ctx.kind(system), args[0])
			if err != nil {
				return err
			}

			rows := sourceRows([]catalog.EndpointView{view})
			if stdoutIsTTY() {
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"SERVICE", "LOG", "URL"}, rows))
				return nil
			}
			for _, row := range rows {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(row, "\t"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&system, "system", false, "Look up the system catalog instead of the service catalog")
	return cmd
}
