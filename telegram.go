package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/acarl005/stripansi"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const DefaultSendTimeout = 30 * time.Second

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Notifier struct {
	client   HTTPClient
	endpoint string
	logger   *Logger
	stats    *Stats
}

type NotifierOption func(*Notifier)

func WithHTTPClient(client HTTPClient) NotifierOption {
	return func(n *Notifier) { n.client = client }
}

func WithEndpoint(endpoint string) NotifierOption {
	return func(n *Notifier) { n.endpoint = endpoint }
}

func WithStats(stats *Stats) NotifierOption {
	return func(n *Notifier) { n.stats = stats }
}

func NewNotifier(logger *Logger, opts ...NotifierOption) *Notifier {
	n := &Notifier{
		client:   &http.Client{Timeout: DefaultSendTimeout},
		endpoint: tgbotapi.APIEndpoint,
		logger:   logger,
		stats:    NewStats(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Notifier) Stats() *Stats { return n.stats }

func (n *Notifier) Send(cfg BotConfiguration, text string) error {
	if err := n.send(cfg, text); err != nil {
		err = redactToken(err, cfg.Token())
		n.stats.RecordFailure()
		n.logger.Error("Failed to send message", zap.Int64("chat_id", cfg.ChatID()), zap.Error(err))
		return err
	}
	return nil
}

func (n *Notifier) send(cfg BotConfiguration, text string) error {
	// Built by hand: NewBotAPI would spend an extra getMe call.
	bot := &tgbotapi.BotAPI{
		Token:  cfg.Token(),
		Debug:  n.logger.verbose,
		Buffer: 100,
		Client: n.client,
	}
	bot.SetAPIEndpoint(n.endpoint)

	content := stripansi.Strip(text)
	msg, err := bot.Send(tgbotapi.NewMessage(cfg.ChatID(), content))
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	n.stats.RecordSent(len(content))
	if msg.Text != "" {
		n.logger.Info(msg.Text)
	} else {
		n.logger.Info("Message sent")
	}
	return nil
}

// redactToken masks the token, which net/http errors carry inside the request URL.
func redactToken(err error, token string) error {
	if token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), token, "<redacted>"))
}
