package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes studio-admin notifications (new enrollments,
// payment outcomes) to a single admin chat. With an empty token or chat id
// the notifier stays constructed but silent, so the rest of the app does not
// care whether Telegram is configured.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram token or admin chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyEnrollment(ctx context.Context, courseName, memberName string) {
	text := fmt.Sprintf("*Nouvelle inscription*\n\nCours : %s\nMembre : %s", courseName, memberName)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyPaymentConfirmed(ctx context.Context, memberID string, credits int) {
	text := fmt.Sprintf("*Paiement confirmé*\n\nMembre : %s\nCrédits ajoutés : %d", memberID, credits)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyPaymentFailed(ctx context.Context, memberID, reason string) {
	text := fmt.Sprintf("*Paiement échoué*\n\nMembre : %s\nRaison : %s", memberID, reason)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
