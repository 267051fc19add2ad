package errors

import "errors"

var (
	ErrMissingBotToken = errors.New("TELEGRAM_BOT_TOKEN is required when Telegram polling is enabled")
)
