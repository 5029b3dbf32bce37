package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/survey-profiler/internal/config"
	"github.com/jonathan/survey-profiler/internal/observability"
	"github.com/jonathan/survey-profiler/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Score a survey export and render the report workbook",
	Long: `Runs the full scoring pipeline: intake -> column location -> identity resolution -> scoring -> content selection -> report rendering.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath  string
	runInput       string
	runOutput      string
	runVerbose     bool
	runEmbedImages bool
	runDatabaseURL string
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	runCommand.Flags().StringVarP(&runInput, "in", "i", "", "Path to survey export (xlsx, csv, or html)")
	runCommand.Flags().StringVarP(&runOutput, "out", "o", "", "Path for the report workbook")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed progress information")
	runCommand.Flags().BoolVar(&runEmbedImages, "embed-images", false, "Rasterize icons and radar charts into the workbook (requires Chrome)")
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if runVerbose {
			fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// CLI flags override config file values when explicitly set.
	if cmd.Flags().Changed("in") {
		cfg.Input = runInput
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = runOutput
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("embed-images") {
		cfg.EmbedImages = runEmbedImages
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Output:      "profile_results.xlsx",
		DatabaseURL: os.Getenv("DATABASE_URL"),
	})

	if cfg.Input == "" {
		return fmt.Errorf("--in must be provided (via flag or config)")
	}

	logger, err := observability.NewLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	result, err := pipeline.RunPipeline(ctx, pipeline.RunOptions{
		InputPath:   cfg.Input,
		OutputPath:  cfg.Output,
		Verbose:     cfg.Verbose,
		DatabaseURL: cfg.DatabaseURL,
		EmbedImages: cfg.EmbedImages,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Scored %d participants (%d rows skipped) -> %s\n",
		len(result.Participants), result.Skipped, cfg.Output)
	return nil
}
