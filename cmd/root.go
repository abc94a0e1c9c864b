package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cinematch/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cinematch",
	Short: "Content-based movie recommendations from your own catalog",
	Long: `CineMatch loads a movie catalog from CSV, builds a TF-IDF index over
genres, directors, cast and plot, and recommends movies similar to any
title you give it. Typos and partial titles are resolved with fuzzy
matching. The engine is also available over HTTP and as MCP tools.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
