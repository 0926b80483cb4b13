package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hiraku/hondana/internal/config"
	"github.com/hiraku/hondana/internal/library"
)

var rootCmd = &cobra.Command{
	Use:   "hondana-cli",
	Short: "Inspect a hondana library from the command line",
	Long:  "Browse series, chapters and pages of a local library without starting the server",
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(sweepCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLibrary loads the configuration and returns a catalog service over the
// configured roots.
func newLibrary() (*library.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return library.New(cfg.Library.Paths), nil
}
