package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the daemon's self-description",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.newClient()
			if err != nil {
				return err
			}

			doc, err := c.ServiceInfo(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:          %s\n", doc.ID)
			fmt.Fprintf(out, "Name:        %s\n", doc.Name)
			fmt.Fprintf(out, "Type:        %s\n", doc.Type)
			fmt.Fprintf(out, "Description: %s\n", doc.Description)
			fmt.Fprintf(out, "Version:     %s\n", doc.Version)
			fmt.Fprintf(out, "Contact:     %s\n", doc.ContactURL)
			return nil
		},
	}
}
