// Package config loads homeworkbot configuration from the environment.
//
// The bot takes no command-line flags: behavior is fixed entirely by
// environment variables, optionally sourced from a .env file in the working
// directory. Three variables are required secrets; everything else has a
// default suited to the reference deployment.
//
// Required:
//
//	PRACTICUM_TOKEN   - OAuth token for the homework status API
//	TELEGRAM_TOKEN    - Telegram bot token
//	TELEGRAM_CHAT_ID  - destination chat identifier (integer)
//
// Optional:
//
//	PRACTICUM_ENDPOINT - status endpoint URL
//	RETRY_PERIOD       - seconds between poll cycles (default 600)
//	REQUEST_TIMEOUT    - seconds per outbound HTTP request (default 10)
//	LOG_LEVEL          - debug, info, warn, error (default info)
//	LOG_FILE           - additional JSON log sink; console is always on
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEndpoint is the homework status endpoint used when
// PRACTICUM_ENDPOINT is not set.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

const (
	defaultRetryPeriod    = 600 * time.Second
	defaultRequestTimeout = 10 * time.Second
)

// requiredVars are the credential variables that must be present and
// non-empty before the poll loop may start.
var requiredVars = []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"}

// MissingCredentialsError reports which required environment variables are
// absent or empty. It is fatal at startup and never retried.
type MissingCredentialsError struct {
	// Names lists the missing variable names, in requiredVars order.
	Names []string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Names, ", "))
}

// Config holds everything the bot needs to run. Create it with [Load];
// a Config that Load returned without error is valid to use as-is.
type Config struct {
	// PracticumToken authenticates requests to the status endpoint.
	PracticumToken string

	// TelegramToken authenticates the notification bot.
	TelegramToken string

	// TelegramChatID is the fixed destination chat for all messages.
	TelegramChatID int64

	// Endpoint is the homework status URL.
	Endpoint string

	// RetryPeriod is the fixed pause between poll cycles, independent of
	// whether a cycle succeeded or failed.
	RetryPeriod time.Duration

	// RequestTimeout bounds each outbound HTTP request.
	RequestTimeout time.Duration

	// LogLevel is the minimum level emitted by the logger.
	LogLevel slog.Level

	// LogFile, when non-empty, names a file that receives a copy of the
	// JSON log stream in addition to the console.
	LogFile string
}

// Load reads configuration from the environment, loading a .env file first
// if one exists. It returns [*MissingCredentialsError] when any of the three
// required secrets is absent, naming every missing variable at once.
func Load() (*Config, error) {
	// best effort: absence of a .env file is not an error
	_ = godotenv.Load()

	var missing []string
	for _, name := range requiredVars {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingCredentialsError{Names: missing}
	}

	chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID must be an integer: %w", err)
	}

	retryPeriod, err := secondsEnv("RETRY_PERIOD", defaultRetryPeriod)
	if err != nil {
		return nil, err
	}
	requestTimeout, err := secondsEnv("REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		return nil, err
	}

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	return &Config{
		PracticumToken: os.Getenv("PRACTICUM_TOKEN"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID: chatID,
		Endpoint:       getEnv("PRACTICUM_ENDPOINT", DefaultEndpoint),
		RetryPeriod:    retryPeriod,
		RequestTimeout: requestTimeout,
		LogLevel:       level,
		LogFile:        os.Getenv("LOG_FILE"),
	}, nil
}

// getEnv returns the value of key, or fallback when unset or empty.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// secondsEnv parses an environment variable holding a positive whole number
// of seconds.
func secondsEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("%s must be a positive number of seconds, got %q", key, raw)
	}
	return time.Duration(seconds) * time.Second, nil
}

func parseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown LOG_LEVEL %q", raw)
	}
}
