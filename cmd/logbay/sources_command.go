package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"logbay/internal/catalog"
)

func newSourcesCommand(ctx *commandContext) *cobra.Command {
	var system bool

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List available log sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.newClient()
			if err != nil {
				return err
			}

			views, err := c.ListSources(cmd.Context(), ctx.kind(system))
			if err != nil {
				return err
			}

			rows := sourceRows(views)
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

	cmd.Flags().BoolVar(&system, "system", false, "List the system catalog instead of the service catalog")
	return cmd
}

func sourceRows(views []catalog.EndpointView) [][]string {
	var rows [][]string
	for _, view := range views {
		names := make([]string, 0, len(view.Logs))
		for name := range view.Logs {
			names = append(names, name)
		}
		sort.Strings(names)
		if len(names) == 0 {
			rows = append(rows, []string{view.Service, "(no logs)", ""})
			continue
		}
		for _, name := range names {
			rows = append(rows, []string{view.Service, name, view.Logs[name]})
		}
	}
	return rows
}
