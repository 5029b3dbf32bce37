package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/survey-profiler/internal/config"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Hash an admin password for ADMIN_PASSWORD_HASH",
	Long:  "Produces a bcrypt hash of the given password, suitable for the ADMIN_PASSWORD_HASH environment variable used by serve mode.",
	Args:  cobra.ExactArgs(1),
	RunE:  runHashPassword,
}

var hashPasswordCost int

func init() {
	hashPasswordCmd.Flags().IntVar(&hashPasswordCost, "cost", 12, "bcrypt cost (10-14)")
	rootCmd.AddCommand(hashPasswordCmd)
}

func runHashPassword(_ *cobra.Command, args []string) error {
	if hashPasswordCost < 10 || hashPasswordCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", hashPasswordCost)
	}

	cfg := &config.AuthConfig{BcryptCost: hashPasswordCost}
	hash, err := cfg.HashPassword(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, hash)
	return nil
}
