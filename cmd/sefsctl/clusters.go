package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type graphResponse struct {
	Files []struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		ClusterID   int    `json:"cluster_id"`
		ClusterName string `json:"cluster_name"`
	} `json:"files"`
	Clusters []struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		Color     string `json:"color"`
		FileCount int    `json:"file_count"`
	} `json:"clusters"`
}

func newClustersCmd(addr *string) *cobra.Command {
	var showFiles bool

	cmd := &cobra.Command{
		Use:   "clusters",
		Short: "List current clusters (or files, with --files)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp graphResponse
			if err := getJSON(*addr, "/graph", &resp); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			defer tw.Flush()

			if showFiles {
				fmt.Fprintln(tw, "PATH\tCLUSTER")
				for _, f := range resp.Files {
					fmt.Fprintf(tw, "%s\t%s\n", f.ID, f.ClusterName)
				}
				return nil
			}

			fmt.Fprintln(tw, "ID\tNAME\tCOLOR\tFILES")
			for _, c := range resp.Clusters {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", c.ID, c.Name, c.Color, c.FileCount)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showFiles, "files", false, "list tracked files and their cluster instead of clusters")
	return cmd
}
