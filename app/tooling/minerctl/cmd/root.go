// Package cmd contains the minerctl app.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var url string

func init() {
	rootCmd.PersistentFlags().StringVarP(&url, "url", "u", "http://localhost:8080", "Url of the mining service.")
}

var rootCmd = &cobra.Command{
	Use:   "minerctl",
	Short: "Control the mining service.",
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
