package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/heywood8/telegram-downloader-bot/internal/modules/link/domain"
	replyService "github.com/heywood8/telegram-downloader-bot/internal/modules/reply/service"
	"github.com/heywood8/telegram-downloader-bot/internal/shared/config"
)

// Handler handles Telegram bot interactions
type Handler struct {
	cfg          *config.Config
	replyService *replyService.Service
}

// New creates a new Telegram handler
func New(cfg *config.Config, replyService *replyService.Service) *Handler {
	return &Handler{
		cfg:          cfg,
		replyService: replyService,
	}
}

// RegisterCommands registers bot commands
func (h *Handler) RegisterCommands(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, h.handleStart)
}

// HandleUpdate processes incoming updates
func (h *Handler) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := inboundMessage(update)
	if msg == nil {
		return
	}

	reply := h.replyService.Handle(domain.Message{
		ChatID: msg.Chat.ID,
		Text:   messageText(msg),
	})
	if reply == nil {
		return
	}

	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text:   reply.Text,
	}); err != nil {
		slog.Error("Failed to send reply", "error", err, "chat_id", msg.Chat.ID)
		return
	}

	slog.Info("Replied to Instagram link", "chat_id", msg.Chat.ID, "user", getAuthorName(msg))
}

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   "Hi! Send an Instagram link and I'll reply.",
	})
}

// Helper functions

// inboundMessage selects the message carried by an update; edited
// messages are evaluated the same as new ones.
func inboundMessage(update *models.Update) *models.Message {
	if update.Message != nil {
		return update.Message
	}
	return update.EditedMessage
}

// messageText resolves the text to match against. Links often arrive
// in captions of forwarded media.
func messageText(msg *models.Message) string {
	if msg.Text == "" && msg.Caption != "" {
		return msg.Caption
	}
	return msg.Text
}

func getAuthorName(msg *models.Message) string {
	if msg.From != nil {
		if msg.From.Username != "" {
			return "@" + msg.From.Username
		}
		if msg.From.FirstName != "" {
			return msg.From.FirstName
		}
	}
	return "Unknown"
}
