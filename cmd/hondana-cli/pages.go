package main

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages <series> <chapter>",
	Short: "List the pages of a chapter",
	Long:  "Display the image entries of a chapter in reading order",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newLibrary()
		if err != nil {
			cobra.CheckErr(err)
		}

		pages, err := svc.Pages(path.Join(args[0], args[1]))
		if err != nil {
			cobra.CheckErr(err)
		}
		for _, p := range pages {
			fmt.Printf("%3d  %s\n", p.Index+1, p.FileName)
		}
	},
}
