package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type healthzResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
	Files  int    `json:"files"`
}

func newStatusCmd(addr *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon liveness, uptime, and tracked file count",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp healthzResponse
			if err := getJSON(*addr, "/healthz", &resp); err != nil {
				return err
			}
			fmt.Printf("status:  %s\n", resp.Status)
			fmt.Printf("uptime:  %s\n", resp.Uptime)
			fmt.Printf("files:   %d\n", resp.Files)
			return nil
		},
	}
}
