// Package notify delivers plain-text messages to a fixed Telegram chat.
package notify

import (
	"fmt"

	tele "gopkg.in/telebot.v3"
)

// DeliveryError wraps a failed send attempt. Delivery failures are never
// fatal to the caller; they are logged and the message is retried on a later
// cycle if it is still relevant.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("message delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// TelegramConfig configures a [Telegram] notifier.
type TelegramConfig struct {
	// Token is the bot token issued by BotFather.
	Token string

	// ChatID is the fixed destination chat.
	ChatID int64

	// APIURL overrides the Bot API base URL. Empty means the production
	// Telegram API; tests point it at a local server.
	APIURL string

	// Offline skips the initial getMe token check. Used in tests.
	Offline bool
}

// Telegram sends messages to one chat through the Telegram Bot API.
type Telegram struct {
	bot  *tele.Bot
	chat tele.ChatID
}

// NewTelegram creates the notifier and, unless cfg.Offline is set, verifies
// the token against the Bot API.
func NewTelegram(cfg TelegramConfig) (*Telegram, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token:   cfg.Token,
		URL:     cfg.APIURL,
		Offline: cfg.Offline,
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Telegram{bot: bot, chat: tele.ChatID(cfg.ChatID)}, nil
}

// Send delivers text to the configured chat. A failure is returned as
// [*DeliveryError] and leaves the notifier usable.
func (t *Telegram) Send(text string) error {
	if _, err := t.bot.Send(t.chat, text); err != nil {
		return &DeliveryError{Err: err}
	}
	return nil
}
