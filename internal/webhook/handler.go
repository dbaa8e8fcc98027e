// Package webhook receives LINE webhook callbacks, verifies their
// signature and hands the events to the bot processor.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/campusbot/timetable-linebot-go/internal/bot"
	"github.com/campusbot/timetable-linebot-go/internal/config"
	"github.com/campusbot/timetable-linebot-go/internal/ctxutil"
	"github.com/campusbot/timetable-linebot-go/internal/logger"
	"github.com/campusbot/timetable-linebot-go/internal/metrics"
	"github.com/campusbot/timetable-linebot-go/internal/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
)

// Handler handles LINE webhook events.
type Handler struct {
	channelSecret string
	client        *messaging_api.MessagingApiAPI
	metrics       *metrics.Metrics
	logger        *logger.Logger
	processor     *bot.Processor
	rateLimiter   *ratelimit.Limiter // global limit on reply API calls
	wg            sync.WaitGroup     // tracks async event processing

	maxMessagesPerReply int
	maxEventsPerWebhook int
	minReplyTokenLength int
}

// HandlerConfig holds configuration for creating a new Handler.
type HandlerConfig struct {
	ChannelSecret string
	ChannelToken  string
	BotConfig     *config.BotConfig
	Metrics       *metrics.Metrics
	Logger        *logger.Logger
	Processor     *bot.Processor
}

// NewHandler creates a new webhook handler.
func NewHandler(cfg HandlerConfig) (*Handler, error) {
	client, err := messaging_api.NewMessagingApiAPI(cfg.ChannelToken)
	if err != nil {
		return nil, fmt.Errorf("create messaging API client: %w", err)
	}

	return &Handler{
		channelSecret:       cfg.ChannelSecret,
		client:              client,
		metrics:             cfg.Metrics,
		logger:              cfg.Logger,
		processor:           cfg.Processor,
		rateLimiter:         ratelimit.New(cfg.BotConfig.ReplyRateRPS, cfg.BotConfig.ReplyRateRPS),
		maxMessagesPerReply: cfg.BotConfig.MaxMessagesPerReply,
		maxEventsPerWebhook: cfg.BotConfig.MaxEventsPerWebhook,
		minReplyTokenLength: cfg.BotConfig.MinReplyTokenLength,
	}, nil
}

// Handle is the Gin handler for the webhook endpoint. It acknowledges
// the callback immediately and processes the events asynchronously, as
// LINE requires a fast 200 response.
func (h *Handler) Handle(c *gin.Context) {
	cb, err := webhook.ParseRequest(h.channelSecret, c.Request)
	if err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			h.logger.Warn("Invalid webhook signature")
			c.Status(http.StatusBadRequest)
		} else {
			h.logger.WithError(err).Error("Failed to parse webhook request")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)

	start := time.Now()

	if len(cb.Events) > h.maxEventsPerWebhook {
		h.logger.WithField("event_count", len(cb.Events)).
			WithField("limit", h.maxEventsPerWebhook).
			Warn("Too many events in webhook batch; truncating")
		cb.Events = cb.Events[:h.maxEventsPerWebhook]
	}

	// Copy events so processing is not racing the HTTP response.
	events := make([]webhook.EventInterface, len(cb.Events))
	copy(events, cb.Events)

	h.wg.Go(func() {
		defer func() {
			if r := recover(); r != nil {
				h.logger.WithField("panic", r).Error("Panic in async event processing")
			}
		}()

		ctx := context.Background()
		for _, event := range events {
			h.processEvent(ctx, event, start)
		}
	})
}

// processEvent handles a single webhook event.
func (h *Handler) processEvent(ctx context.Context, event webhook.EventInterface, webhookStart time.Time) {
	eventStart := time.Now()
	var messages []messaging_api.MessageInterface
	var eventType string
	var err error

	log := h.logger
	if eventID := extractEventID(event); eventID != "" {
		ctx = ctxutil.WithRequestID(ctx, eventID)
		log = log.WithRequestID(eventID)
	}

	switch e := event.(type) {
	case webhook.MessageEvent:
		eventType = "message"
		messages, err = h.processor.ProcessMessage(ctx, e)
	case webhook.PostbackEvent:
		eventType = "postback"
		messages, err = h.processor.ProcessPostback(ctx, e)
	case webhook.FollowEvent:
		eventType = "follow"
		messages, err = h.processor.ProcessFollow(e)
	case webhook.JoinEvent:
		eventType = "join"
		messages, err = h.processor.ProcessJoin(e)
	default:
		log.WithField("event_type", fmt.Sprintf("%T", e)).Debug("Unsupported event type")
		return
	}

	duration := time.Since(eventStart).Seconds()
	status := "success"
	if err != nil {
		status = "error"
		log.WithError(err).WithField("event_type", eventType).Error("Failed to handle event")
	}
	h.metrics.RecordWebhook(eventType, status, duration)

	if len(messages) > 0 && err == nil {
		h.reply(event, eventType, messages, log, eventStart)
	}

	log.WithField("event_type", eventType).
		WithField("event_duration_ms", time.Since(eventStart).Milliseconds()).
		WithField("batch_duration_ms", time.Since(webhookStart).Milliseconds()).
		Info("Event processed")
}

// reply sends the messages back via the reply API, respecting LINE's
// per-reply message cap and the global rate limit.
func (h *Handler) reply(event webhook.EventInterface, eventType string, messages []messaging_api.MessageInterface, log *logger.Logger, eventStart time.Time) {
	if len(messages) > h.maxMessagesPerReply {
		log.WithField("message_count", len(messages)).
			WithField("limit", h.maxMessagesPerReply).
			Warn("Message count exceeds limit; truncating")
		messages = messages[:h.maxMessagesPerReply]
	}

	replyToken := extractReplyToken(event)
	if replyToken == "" {
		log.Debug("Empty reply token, skipping reply")
		return
	}
	if len(replyToken) < h.minReplyTokenLength {
		log.WithField("token_length", len(replyToken)).Debug("Invalid reply token format")
		return
	}

	if !h.rateLimiter.Allow() {
		log.Warn("Reply rate limit exceeded; waiting")
		h.metrics.RecordRateLimiterDrop("reply")
		h.rateLimiter.Wait()
	}

	if _, err := h.client.ReplyMessage(
		&messaging_api.ReplyMessageRequest{
			ReplyToken: replyToken,
			Messages:   messages,
		},
	); err != nil {
		if strings.Contains(err.Error(), "Invalid reply token") {
			log.WithError(err).Debug("Reply token already used or invalid")
		} else {
			log.WithError(err).Error("Failed to send reply")
		}
		h.metrics.RecordWebhook(eventType, "reply_error", time.Since(eventStart).Seconds())
	}
}

func extractEventID(event webhook.EventInterface) string {
	switch e := event.(type) {
	case webhook.MessageEvent:
		return e.WebhookEventId
	case webhook.PostbackEvent:
		return e.WebhookEventId
	case webhook.FollowEvent:
		return e.WebhookEventId
	case webhook.JoinEvent:
		return e.WebhookEventId
	default:
		return ""
	}
}

func extractReplyToken(event webhook.EventInterface) string {
	switch e := event.(type) {
	case webhook.MessageEvent:
		return e.ReplyToken
	case webhook.PostbackEvent:
		return e.ReplyToken
	case webhook.FollowEvent:
		return e.ReplyToken
	case webhook.JoinEvent:
		return e.ReplyToken
	default:
		return ""
	}
}

// Shutdown waits for in-flight event processing to finish, or for the
// context to be canceled.
func (h *Handler) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.wg.Wait()
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
