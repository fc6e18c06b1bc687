// Package main is the entry point for the homeworkbot CLI.
//
// homeworkbot polls the homework status API on a fixed interval and forwards
// review updates to a Telegram chat. Running the binary with no arguments
// starts the bot; there are no flags, configuration comes entirely from
// environment variables (optionally via a .env file).
//
// Usage:
//
//	homeworkbot         # start polling
//	homeworkbot check   # validate configuration without polling
//	homeworkbot version # show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd starts the bot when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "homeworkbot",
	Short: "Forward homework review statuses to a Telegram chat",
	Long: `homeworkbot polls the Practicum homework status API and sends a
Telegram message whenever a submitted assignment changes review status.

Configuration is read from environment variables (a .env file in the
working directory is honored):

  PRACTICUM_TOKEN   OAuth token for the status API (required)
  TELEGRAM_TOKEN    Telegram bot token (required)
  TELEGRAM_CHAT_ID  destination chat identifier (required)
  RETRY_PERIOD      seconds between polls, default 600

The bot runs until interrupted (Ctrl+C) or it receives SIGTERM. A missing
credential is the only fatal condition; runtime failures are reported to
the chat and polling continues.`,
	RunE:         runBot,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this homeworkbot binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("homeworkbot %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
