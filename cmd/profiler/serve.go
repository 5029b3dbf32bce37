package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/survey-profiler/internal/observability"
	"github.com/jonathan/survey-profiler/internal/server"
)

var (
	serveAddr        string
	serveEmbedImages bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes REST endpoints for uploading survey exports and retrieving scored reports.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().BoolVar(&serveEmbedImages, "embed-images", false, "Rasterize icons and radar charts into workbooks (requires Chrome)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := observability.NewLogger(false)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	srv, err := server.New(server.Config{
		Addr:        serveAddr,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		EmbedImages: serveEmbedImages,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
