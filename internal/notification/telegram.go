package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/locale"
	"github.com/stpnv0/SiPinjam/internal/presenter"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	format *presenter.Formatter
	logger logger.Logger
}

func NewTelegramNotifier(token string, format *presenter.Formatter, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, format: format, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, format: format, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingSubmitted(ctx context.Context, user *domain.User, b *domain.Booking) {
	n.send(ctx, user.TelegramChatID, SubmittedText(n.format, b))
}

func (n *TelegramNotifier) NotifyBookingStatusChanged(ctx context.Context, user *domain.User, b *domain.Booking) {
	n.send(ctx, user.TelegramChatID, StatusChangedText(n.format, b))
}

func schedule(f *presenter.Formatter, b *domain.Booking) string {
	return fmt.Sprintf("Mulai: %s\nSelesai: %s\nDurasi: %s",
		f.Format(b.StartDate, locale.LayoutDateTime),
		f.Format(b.EndDate, locale.LayoutDateTime),
		presenter.Duration(b.StartDate, b.EndDate),
	)
}

func SubmittedText(f *presenter.Formatter, b *domain.Booking) string {
	return fmt.Sprintf(
		"*Peminjaman diajukan*\n\n%s: %s\n%s\n\nStatus: %s",
		f.Detail(b).Item.TypeName, escape(b.ItemName),
		schedule(f, b),
		statusLabel(b.Status),
	)
}

func StatusChangedText(f *presenter.Formatter, b *domain.Booking) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*Status peminjaman: %s*\n\n", statusLabel(b.Status))
	fmt.Fprintf(&sb, "%s: %s\n%s", f.Detail(b).Item.TypeName, escape(b.ItemName), schedule(f, b))

	if b.Status == domain.BookingStatusRejected && b.RejectionReason != "" {
		fmt.Fprintf(&sb, "\n\nAlasan: %s", escape(b.RejectionReason))
	}

	return sb.String()
}

// escape экранирует пользовательский текст для ModeMarkdown.
func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func statusLabel(s domain.BookingStatus) string {
	if badge, ok := presenter.StatusBadge(s); ok {
		return badge.Label
	}
	return string(s)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
