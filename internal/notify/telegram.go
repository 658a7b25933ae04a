// Package notify delivers load-failure notifications via the Telegram Bot
// API. The notifier subscribes to the loader's lifecycle signals and forwards
// error signals as MarkdownV2 messages, with retry on delivery failure.
package notify

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/openevents/eventboard/internal/logger"
	"github.com/openevents/eventboard/internal/models"
)

// Telegram sends load-failure notifications to a single chat.
type Telegram struct {
	bot            *tgbotapi.BotAPI
	chatID         int64
	maxRetries     int
	retryDelayBase time.Duration
}

// NewTelegram creates a notifier. maxRetries and retryDelayBase fall back to
// 3 and 1s when non-positive.
func NewTelegram(botToken, chatID string, maxRetries int, retryDelayBase time.Duration) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	chatIDInt, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid chat ID: %w", err)
	}

	if maxRetries <= 0 {
		maxRetries = 3
	}
	if retryDelayBase <= 0 {
		retryDelayBase = time.Second
	}

	return &Telegram{
		bot:            bot,
		chatID:         chatIDInt,
		maxRetries:     maxRetries,
		retryDelayBase: retryDelayBase,
	}, nil
}

// Observe is the lifecycle signal sink. Only error signals produce a
// notification; delivery failures are logged, never propagated, so a broken
// notifier cannot break the load path.
func (t *Telegram) Observe(sig models.Signal) {
	if sig.Kind != models.SignalError {
		return
	}
	if err := t.sendLoadFailure(sig); err != nil {
		logger.Warn("Failed to send load-failure notification: %v", err)
	}
}

func (t *Telegram) sendLoadFailure(sig models.Signal) error {
	message := fmt.Sprintf("⚠️ *Event catalog load failed*\n\n%s\n\nOperation: %s\nTime: %s",
		EscapeMarkdownV2(sig.Message),
		EscapeMarkdownV2(sig.OpID),
		EscapeMarkdownV2(time.Now().Format("2006-01-02 15:04:05")),
	)

	msg := tgbotapi.NewMessage(t.chatID, message)
	msg.ParseMode = "MarkdownV2"

	var lastErr error
	for i := 0; i < t.maxRetries; i++ {
		_, err := t.bot.Send(msg)
		if err == nil {
			return nil
		}
		lastErr = err
		time.Sleep(t.retryDelayBase * time.Duration(i+1))
	}

	return fmt.Errorf("failed to send message after %d retries: %w", t.maxRetries, lastErr)
}

// EscapeMarkdownV2 escapes the characters Telegram's MarkdownV2 mode treats
// as markup: _ * [ ] ( ) ~ ` > # + - = | { } . !
func EscapeMarkdownV2(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, char := range text {
		switch char {
		case '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!':
			b.WriteByte('\\')
		}
		b.WriteRune(char)
	}
	return b.String()
}
