package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

// setRequired sets all three required credentials to valid values.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PRACTICUM_TOKEN", "practicum-secret")
	t.Setenv("TELEGRAM_TOKEN", "telegram-secret")
	t.Setenv("TELEGRAM_CHAT_ID", "123456789")
	// keep optional vars out of the way regardless of the host environment
	t.Setenv("PRACTICUM_ENDPOINT", "")
	t.Setenv("RETRY_PERIOD", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FILE", "")
}

// TestLoad_Defaults verifies that a minimal environment produces the
// reference defaults.
func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.PracticumToken != "practicum-secret" {
		t.Errorf("unexpected practicum token %q", cfg.PracticumToken)
	}
	if cfg.TelegramChatID != 123456789 {
		t.Errorf("expected chat id 123456789, got %d", cfg.TelegramChatID)
	}
	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("expected default endpoint, got %q", cfg.Endpoint)
	}
	if cfg.RetryPeriod != 600*time.Second {
		t.Errorf("expected 600s retry period, got %s", cfg.RetryPeriod)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("expected 10s request timeout, got %s", cfg.RequestTimeout)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %s", cfg.LogLevel)
	}
}

// TestLoad_MissingCredentials verifies that every absent credential is named
// at once and that no partial config is returned.
func TestLoad_MissingCredentials(t *testing.T) {
	tests := []struct {
		name    string
		unset   []string
		wantAll []string
	}{
		{
			name:    "one missing",
			unset:   []string{"TELEGRAM_TOKEN"},
			wantAll: []string{"TELEGRAM_TOKEN"},
		},
		{
			name:    "all missing",
			unset:   []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"},
			wantAll: []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for _, name := range tt.unset {
				t.Setenv(name, "")
			}

			cfg, err := Load()
			if cfg != nil {
				t.Error("expected nil config on credential failure")
			}

			var missing *MissingCredentialsError
			if !errors.As(err, &missing) {
				t.Fatalf("expected *MissingCredentialsError, got %T: %v", err, err)
			}
			if len(missing.Names) != len(tt.wantAll) {
				t.Fatalf("expected %d missing names, got %v", len(tt.wantAll), missing.Names)
			}
			for i, name := range tt.wantAll {
				if missing.Names[i] != name {
					t.Errorf("expected missing name %q at %d, got %q", name, i, missing.Names[i])
				}
			}
		})
	}
}

// TestLoad_Overrides verifies that optional variables override the defaults.
func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PRACTICUM_ENDPOINT", "http://localhost:9999/statuses/")
	t.Setenv("RETRY_PERIOD", "30")
	t.Setenv("REQUEST_TIMEOUT", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Endpoint != "http://localhost:9999/statuses/" {
		t.Errorf("endpoint override ignored, got %q", cfg.Endpoint)
	}
	if cfg.RetryPeriod != 30*time.Second {
		t.Errorf("expected 30s retry period, got %s", cfg.RetryPeriod)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("expected 3s request timeout, got %s", cfg.RequestTimeout)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %s", cfg.LogLevel)
	}
}

// TestLoad_InvalidValues verifies that malformed optional values fail loudly
// instead of silently falling back.
func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"chat id not a number", "TELEGRAM_CHAT_ID", "my-chat"},
		{"retry period not a number", "RETRY_PERIOD", "ten"},
		{"retry period negative", "RETRY_PERIOD", "-5"},
		{"timeout zero", "REQUEST_TIMEOUT", "0"},
		{"unknown log level", "LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}
