package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hiraku/hondana/internal/library"
)

var (
	listSearch string
	listSort   string
	listDesc   bool
	listLatest bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the series in the library",
	Long:  "Display the series in the library in a formatted table, optionally filtered and sorted",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newLibrary()
		if err != nil {
			cobra.CheckErr(err)
		}

		series := svc.ListSeries(listSearch, listSort, !listDesc)
		if listLatest {
			series = svc.ListLatest()
		}
		if len(series) == 0 {
			fmt.Println("No series found.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTITLE\tAUTHOR\tMODIFIED")
		for _, sr := range series {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				sr.Name, sr.Title, sr.Author, sr.ModTime.Format("2006-01-02 15:04"))
		}
		w.Flush()
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "case-insensitive substring filter on the series name")
	listCmd.Flags().StringVar(&listSort, "sort", library.SortByName, "sort criterion: name or modified")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "sort in descending order")
	listCmd.Flags().BoolVar(&listLatest, "latest", false, "only series modified in the last seven days, newest first")
}
