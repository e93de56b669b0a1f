package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rishadfb/email-creation/pkg/catalog"
	"github.com/rishadfb/email-creation/templates"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the built-in email templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(templates.FS)
			if err != nil {
				return fmt.Errorf("loading template catalog: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCATEGORY\tSLOTS\tBLOCKS\tDESCRIPTION")
			for _, d := range cat.List() {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
					d.ID, d.Category, len(d.Slots), strings.Join(d.Blocks, ","), d.Description)
			}
			return w.Flush()
		},
	}
}
