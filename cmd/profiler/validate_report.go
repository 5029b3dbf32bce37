package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/survey-profiler/internal/schemas"
)

var validateReportCmd = &cobra.Command{
	Use:   "validate-report",
	Short: "Validate an exported participants JSON against its schema",
	Long:  "Checks a participants JSON export (the scoring artifact served by the API) against schemas/participants.schema.json.",
	RunE:  runValidateReport,
}

var validateReportInput string

func init() {
	validateReportCmd.Flags().StringVarP(&validateReportInput, "in", "i", "", "Path to participants JSON file (required)")

	if err := validateReportCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateReportCmd)
}

func runValidateReport(_ *cobra.Command, _ []string) error {
	if _, err := os.Stat(validateReportInput); os.IsNotExist(err) {
		return fmt.Errorf("participants file not found: %s", validateReportInput)
	}

	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "participants.schema.json"))
	if schemaPath == "" {
		return fmt.Errorf("could not locate schemas/participants.schema.json")
	}

	err := schemas.ValidateJSON(schemaPath, validateReportInput)
	if err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Fprint(os.Stderr, validationErr.Error())
		}
		return fmt.Errorf("report validation failed")
	}

	fmt.Fprintf(os.Stdout, "%s conforms to %s\n", validateReportInput, filepath.Base(schemaPath))
	return nil
}
