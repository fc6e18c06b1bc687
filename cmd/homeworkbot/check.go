package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/practicum-tools/homeworkbot/internal/config"
)

// checkCmd validates the environment configuration without polling.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration without polling",
	Long: `Validate the environment configuration without contacting the API
or Telegram. Useful before deploying a new environment.

Exit codes:
  0 - Configuration is valid
  1 - Configuration is invalid (details printed to stderr)`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// secrets are deliberately not echoed
	fmt.Printf("Configuration is valid!\n")
	fmt.Printf("  Endpoint:        %s\n", cfg.Endpoint)
	fmt.Printf("  Chat ID:         %d\n", cfg.TelegramChatID)
	fmt.Printf("  Retry period:    %s\n", cfg.RetryPeriod)
	fmt.Printf("  Request timeout: %s\n", cfg.RequestTimeout)

	return nil
}
