package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/practicum-tools/homeworkbot/internal/config"
	"github.com/practicum-tools/homeworkbot/internal/notify"
	"github.com/practicum-tools/homeworkbot/internal/poller"
	"github.com/practicum-tools/homeworkbot/internal/practicum"
)

// runBot loads configuration, wires the API client and the Telegram sink
// into a poller, and blocks in the poll loop until SIGINT/SIGTERM.
func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		// fatal before the loop ever starts; name what is missing
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("configuration invalid", "error", err)
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("credentials loaded",
		"endpoint", cfg.Endpoint,
		"chat_id", cfg.TelegramChatID,
	)

	notifier, err := notify.NewTelegram(notify.TelegramConfig{
		Token:  cfg.TelegramToken,
		ChatID: cfg.TelegramChatID,
	})
	if err != nil {
		return fmt.Errorf("failed to create telegram notifier: %w", err)
	}

	client := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.RequestTimeout)
	defer client.Close()

	bot := poller.New(client, notifier, cfg.RetryPeriod, logger)

	// cancel on SIGINT/SIGTERM for clean shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil {
		return fmt.Errorf("poller error: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

// newLogger builds the JSON logger: always the console, plus a copy to
// cfg.LogFile when one is configured. The returned func closes the file sink.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeLog := func() {}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = io.MultiWriter(os.Stderr, f)
		closeLog = func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
	return logger, closeLog, nil
}
