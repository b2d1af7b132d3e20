// cmd/sefsctl/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var addr string

	root := &cobra.Command{
		Use:   "sefsctl",
		Short: "Operator CLI for the sefsd file-indexing daemon",
		Long: `sefsctl talks to a running sefsd daemon over its HTTP surface to
inspect the current clustering state, tail recent activity, and force
an out-of-band reclustering.`,
	}
	root.PersistentFlags().StringVar(&addr, "addr", "http://127.0.0.1:8420", "sefsd HTTP address")

	root.AddCommand(
		newStatusCmd(&addr),
		newClustersCmd(&addr),
		newLogsCmd(&addr),
		newReclusterCmd(&addr),
	)
	return root
}
