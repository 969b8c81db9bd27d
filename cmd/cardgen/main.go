// Package main is the entry point for the cardgen server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:   "cardgen",
	Short: "Themed ID card generator",
	Long: `cardgen builds themed ID cards (typology, faction and developer), assigns
category-prefixed card numbers and exports them as PNG or PDF.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "dotenv files to load")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(sweepCmd)
}
