package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters <series>",
	Short: "List the chapters of a series",
	Long:  "Display the discovered chapters of a series, highest numbered first",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newLibrary()
		if err != nil {
			cobra.CheckErr(err)
		}

		chapters, err := svc.Chapters(args[0])
		if err != nil {
			cobra.CheckErr(err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "NUMBER\tNAME\tFORMAT")
		for _, ch := range chapters {
			format := "?"
			if c, err := svc.ResolveChapter(ch.URL); err == nil {
				format = c.Kind().String()
			}
			number := fmt.Sprintf("%g", ch.Number)
			if ch.Number < 0 {
				number = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", number, ch.Name, format)
		}
		w.Flush()
	},
}
