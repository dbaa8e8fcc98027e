package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campusbot/timetable-linebot-go/internal/config"
	"github.com/campusbot/timetable-linebot-go/internal/ctxutil"
	"github.com/campusbot/timetable-linebot-go/internal/logger"
	"github.com/campusbot/timetable-linebot-go/internal/metrics"
	"github.com/campusbot/timetable-linebot-go/pkg/lineutil"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
)

// maxTextLength is the LINE API limit for incoming text messages.
const maxTextLength = 20000

// Processor handles the core logic of processing LINE events and
// dispatching them to the registered modules.
type Processor struct {
	registry *Registry
	logger   *logger.Logger
	metrics  *metrics.Metrics

	webhookTimeout time.Duration
}

// ProcessorConfig holds configuration for creating a new Processor.
type ProcessorConfig struct {
	Registry  *Registry
	Logger    *logger.Logger
	Metrics   *metrics.Metrics
	BotConfig *config.BotConfig
}

// NewProcessor creates a new event processor.
func NewProcessor(cfg ProcessorConfig) *Processor {
	return &Processor{
		registry:       cfg.Registry,
		logger:         cfg.Logger,
		metrics:        cfg.Metrics,
		webhookTimeout: cfg.BotConfig.WebhookTimeout,
	}
}

// ProcessMessage handles a text message event.
func (p *Processor) ProcessMessage(ctx context.Context, event webhook.MessageEvent) ([]messaging_api.MessageInterface, error) {
	ctx = ctxutil.WithChatID(ctx, GetChatID(event.Source))

	// Only text messages carry queries.
	if event.Message.GetType() != "text" {
		return nil, nil
	}

	textMsg, ok := event.Message.(webhook.TextMessageContent)
	if !ok {
		return nil, errors.New("failed to cast message to text")
	}

	text := textMsg.Text
	if len(text) == 0 {
		return nil, nil
	}
	if len(text) > maxTextLength {
		p.logger.Warnf("Text message too long: %d characters", len(text))
		return []messaging_api.MessageInterface{
			lineutil.NewTextMessage(fmt.Sprintf("Message too long (over %d characters). Please shorten it and try again.", maxTextLength)),
		}, nil
	}

	text = normalizeWhitespace(text)
	if text == "" {
		return nil, nil
	}

	processCtx, cancel := context.WithTimeout(ctx, p.webhookTimeout)
	defer cancel()

	return p.registry.DispatchMessage(processCtx, text), nil
}

// ProcessPostback handles a postback event.
func (p *Processor) ProcessPostback(ctx context.Context, event webhook.PostbackEvent) ([]messaging_api.MessageInterface, error) {
	ctx = ctxutil.WithChatID(ctx, GetChatID(event.Source))

	data := strings.TrimSpace(event.Postback.Data)
	if data == "" {
		p.logger.Warn("Empty postback data")
		return nil, nil
	}
	if len(data) > 300 { // LINE postback data limit
		p.logger.Warnf("Postback data too long: %d bytes", len(data))
		return []messaging_api.MessageInterface{
			lineutil.NewTextMessage("This action is no longer valid. Please try again."),
		}, nil
	}

	p.logger.WithField("data", data).Debug("Received postback")

	processCtx, cancel := context.WithTimeout(ctx, p.webhookTimeout)
	defer cancel()

	if msgs := p.registry.DispatchPostback(processCtx, data); len(msgs) > 0 {
		return msgs, nil
	}

	return []messaging_api.MessageInterface{
		lineutil.NewTextMessage("This action has expired or is invalid."),
	}, nil
}

// ProcessFollow handles a follow event with a welcome message.
func (p *Processor) ProcessFollow(event webhook.FollowEvent) ([]messaging_api.MessageInterface, error) {
	p.logger.Info("New user followed the bot")
	return p.welcomeMessages(), nil
}

// ProcessJoin handles the bot being added to a group or room.
func (p *Processor) ProcessJoin(event webhook.JoinEvent) ([]messaging_api.MessageInterface, error) {
	p.logger.Info("Bot joined a group or room")
	return p.welcomeMessages(), nil
}

func (p *Processor) welcomeMessages() []messaging_api.MessageInterface {
	msg := lineutil.NewTextMessage(
		"Hi! I look up the weekly class timetable for you.\n\n" +
			"Ask me with a day and a section, for example:\n" +
			"• today s3\n" +
			"• tomorrow section 4\n" +
			"• friday s2\n" +
			"• 2026-03-05 s1\n\n" +
			"Type \"help\" for the full usage guide.",
	)
	msg.QuickReply = welcomeQuickReply()

	return []messaging_api.MessageInterface{msg}
}

func welcomeQuickReply() *messaging_api.QuickReply {
	return lineutil.NewQuickReply([]lineutil.QuickReplyItem{
		{Action: lineutil.NewMessageAction("Today S1", "today s1")},
		{Action: lineutil.NewMessageAction("Tomorrow S1", "tomorrow s1")},
		{Action: lineutil.NewPostbackAction("Help", "schedule:help")},
	})
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
