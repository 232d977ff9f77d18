package notification

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v4"

	"homework-status-bot/config"
	"homework-status-bot/internal/homework"
)

// Sender defines the subset of the Telegram bot used to deliver messages.
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// chat is a Telegram destination given either as a numeric id or as @channel.
type chat string

func (c chat) Recipient() string { return string(c) }

// NewBot creates a Telegram bot that only sends. It performs no network call
// until the first message.
func NewBot(cfg config.TelegramConfig, token string) (*tele.Bot, error) {
	bot, err := tele.NewBot(tele.Settings{
		URL:     cfg.APIURL,
		Token:   token,
		Offline: true,
		Client:  &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return bot, nil
}

// Notifier delivers messages to a single fixed chat on a best-effort basis.
type Notifier struct {
	sender  Sender
	chat    chat
	limiter *rate.Limiter
	log     zerolog.Logger
}

// New creates a Notifier. A non-positive ratePerSec disables pacing.
func New(sender Sender, chatID string, ratePerSec float64, log zerolog.Logger) *Notifier {
	limit := rate.Inf
	if ratePerSec > 0 {
		limit = rate.Limit(ratePerSec)
	}
	return &Notifier{
		sender:  sender,
		chat:    chat(chatID),
		limiter: rate.NewLimiter(limit, 1),
		log:     log.With().Str("component", "notifier").Str("chat", chatID).Logger(),
	}
}

// ChatID returns the destination this notifier writes to.
func (n *Notifier) ChatID() string {
	return string(n.chat)
}

// Notify sends text to the chat. Failures are logged and reported as false;
// they are never retried or returned.
func (n *Notifier) Notify(ctx context.Context, text string) bool {
	if err := n.limiter.Wait(ctx); err != nil {
		n.log.Error().Err(fmt.Errorf("%w: %w", homework.ErrDelivery, err)).Str("message", text).Msg("message not sent")
		return false
	}

	if _, err := n.sender.Send(n.chat, text); err != nil {
		n.log.Error().Err(fmt.Errorf("%w: %w", homework.ErrDelivery, err)).Str("message", text).Msg("message not sent")
		return false
	}

	n.log.Info().Str("message", text).Msg("message sent")
	return true
}
