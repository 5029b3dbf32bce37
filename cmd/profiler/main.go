// Package main provides the survey profiler CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "profiler",
	Short: "Survey scoring and profile report generator",
	Long:  "Profiler scores 25-item Likert survey exports into five-dimension behavioral profiles and renders a formatted report workbook, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
