package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type logEntry struct {
	TimeStr string `json:"time_str"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
}

func newLogsCmd(addr *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "Tail the recent activity log",
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []logEntry
			if err := getJSON(*addr, "/logs", &entries); err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Printf("%s %s %-10s %s\n", e.TimeStr, e.Icon, e.Kind, e.Message)
			}
			return nil
		},
	}
}
