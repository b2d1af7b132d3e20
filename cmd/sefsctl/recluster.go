package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReclusterCmd(addr *string) *cobra.Command {
	return &cobra.Command{
		Use:   "recluster",
		Short: "Force an immediate reclustering, bypassing the quiet-period timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp map[string]any
			if err := postJSON(*addr, "/recluster", &resp); err != nil {
				return err
			}
			fmt.Println(resp["status"])
			return nil
		},
	}
}
