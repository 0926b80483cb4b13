package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Materialize missing series covers",
	Long:  "Walk every series and write a cover.jpg where no explicit cover exists",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newLibrary()
		if err != nil {
			cobra.CheckErr(err)
		}

		for _, name := range svc.SeriesNames() {
			cover, err := svc.EnsureCover(name)
			switch {
			case err != nil:
				fmt.Printf("%-40s error: %v\n", name, err)
			case cover == "":
				fmt.Printf("%-40s no cover\n", name)
			default:
				fmt.Printf("%-40s %s\n", name, cover)
			}
		}
	},
}
