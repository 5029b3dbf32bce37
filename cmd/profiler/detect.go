package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/survey-profiler/internal/intake"
	"github.com/jonathan/survey-profiler/internal/locate"
	"github.com/jonathan/survey-profiler/internal/observability"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Locate the survey question columns in an export",
	Long:  "Loads a survey export and reports which contiguous column block holds the 25 question responses, without scoring anything.",
	RunE:  runDetect,
}

var (
	detectInput   string
	detectVerbose bool
)

func init() {
	detectCmd.Flags().StringVarP(&detectInput, "in", "i", "", "Path to survey export (required)")
	detectCmd.Flags().BoolVarP(&detectVerbose, "verbose", "v", false, "Print detailed detection information")

	if err := detectCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(detectCmd)
}

func runDetect(_ *cobra.Command, _ []string) error {
	logger, err := observability.NewLogger(detectVerbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	table, err := intake.NewReader(logger).Load(detectInput)
	if err != nil {
		return fmt.Errorf("loading survey input failed: %w", err)
	}

	span, err := locate.New(logger).Locate(table)
	if err != nil {
		return fmt.Errorf("locating survey columns failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintSpan(span, table)
	return nil
}
