package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pandamcp/panda/internal/framework"
)

func newFrameworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frameworks",
		Short: "List the registered frameworks",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := framework.NewRegistry()
			for _, d := range []framework.Domain{framework.Planning, framework.Auditing} {
				if err := registry.Load(d); err != nil {
					return err
				}
				fmt.Printf("%s:\n", d)
				for _, id := range registry.List(d) {
					rec, err := registry.Get(d, id)
					if err != nil {
						return err
					}
					fmt.Printf("  %-22s %s\n", rec.ID, rec.Description)
				}
				fmt.Println()
			}
			return nil
		},
	}
}
