package bot

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/campusbot/timetable-linebot-go/internal/config"
	"github.com/campusbot/timetable-linebot-go/internal/logger"
	"github.com/campusbot/timetable-linebot-go/internal/metrics"
	"github.com/campusbot/timetable-linebot-go/pkg/lineutil"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoHandler replies with the text it received, prefixed by its name.
type echoHandler struct {
	name    string
	matches func(string) bool
}

func (h *echoHandler) Name() string { return h.name }

func (h *echoHandler) CanHandle(text string) bool { return h.matches(text) }

func (h *echoHandler) HandleMessage(_ context.Context, text string) []messaging_api.MessageInterface {
	return []messaging_api.MessageInterface{lineutil.NewTextMessage(h.name + ":" + text)}
}

func (h *echoHandler) HandlePostback(_ context.Context, data string) []messaging_api.MessageInterface {
	return []messaging_api.MessageInterface{lineutil.NewTextMessage(h.name + " postback:" + data)}
}

func newTestProcessor(handlers ...Handler) *Processor {
	registry := NewRegistry()
	for _, h := range handlers {
		registry.Register(h)
	}
	return NewProcessor(ProcessorConfig{
		Registry: registry,
		Logger:   logger.New("error"),
		Metrics:  metrics.New(prometheus.NewRegistry()),
		BotConfig: &config.BotConfig{
			WebhookTimeout:      time.Second,
			ReplyRateRPS:        100,
			MaxMessagesPerReply: 5,
			MaxEventsPerWebhook: 100,
			MinReplyTokenLength: 10,
		},
	})
}

func textEvent(text string) webhook.MessageEvent {
	return webhook.MessageEvent{
		Source:  webhook.UserSource{UserId: "U0123456789"},
		Message: webhook.TextMessageContent{
			MessageContent: webhook.MessageContent{Type: "text"},
			Text:           text,
		},
	}
}

func messageText(t *testing.T, msg messaging_api.MessageInterface) string {
	t.Helper()
	textMsg, ok := msg.(*messaging_api.TextMessage)
	require.True(t, ok)
	return textMsg.Text
}

func TestProcessMessageDispatchesToMatchingHandler(t *testing.T) {
	t.Parallel()

	p := newTestProcessor(
		&echoHandler{name: "never", matches: func(string) bool { return false }},
		&echoHandler{name: "always", matches: func(string) bool { return true }},
	)

	msgs, err := p.ProcessMessage(context.Background(), textEvent("today s1"))
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "always:today s1", messageText(t, msgs[0]))
}

func TestProcessMessageNormalizesWhitespace(t *testing.T) {
	t.Parallel()

	p := newTestProcessor(&echoHandler{name: "echo", matches: func(string) bool { return true }})

	msgs, err := p.ProcessMessage(context.Background(), textEvent("  today \t  s1  "))
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "echo:today s1", messageText(t, msgs[0]))
}

func TestProcessMessageIgnoresEmptyText(t *testing.T) {
	t.Parallel()

	p := newTestProcessor(&echoHandler{name: "echo", matches: func(string) bool { return true }})

	msgs, err := p.ProcessMessage(context.Background(), textEvent("   "))
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestProcessMessageRejectsOversizedText(t *testing.T) {
	t.Parallel()

	p := newTestProcessor(&echoHandler{name: "echo", matches: func(string) bool { return true }})

	msgs, err := p.ProcessMessage(context.Background(), textEvent(strings.Repeat("a", maxTextLength+1)))
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Contains(t, messageText(t, msgs[0]), "too long")
}

func TestProcessMessageIgnoresNonTextMessages(t *testing.T) {
	t.Parallel()

	p := newTestProcessor(&echoHandler{name: "echo", matches: func(string) bool { return true }})

	event := webhook.MessageEvent{
		Source:  webhook.UserSource{UserId: "U0123456789"},
		Message: webhook.StickerMessageContent{StickerId: "1", PackageId: "1"},
	}
	msgs, err := p.ProcessMessage(context.Background(), event)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestProcessPostbackRoutesByPrefix(t *testing.T) {
	t.Parallel()

	p := newTestProcessor(
		&echoHandler{name: "schedule", matches: func(string) bool { return true }},
	)

	event := webhook.PostbackEvent{
		Source:   webhook.UserSource{UserId: "U0123456789"},
		Postback: &webhook.PostbackContent{Data: "schedule:help"},
	}
	msgs, err := p.ProcessPostback(context.Background(), event)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "schedule postback:help", messageText(t, msgs[0]))
}

func TestProcessPostbackUnknownPrefix(t *testing.T) {
	t.Parallel()

	p := newTestProcessor(
		&echoHandler{name: "schedule", matches: func(string) bool { return true }},
	)

	event := webhook.PostbackEvent{
		Source:   webhook.UserSource{UserId: "U0123456789"},
		Postback: &webhook.PostbackContent{Data: "other:thing"},
	}
	msgs, err := p.ProcessPostback(context.Background(), event)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Contains(t, messageText(t, msgs[0]), "expired or is invalid")
}

func TestProcessFollowSendsWelcome(t *testing.T) {
	t.Parallel()

	p := newTestProcessor()

	msgs, err := p.ProcessFollow(webhook.FollowEvent{})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Contains(t, messageText(t, msgs[0]), "weekly class timetable")
}

func TestGetChatID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "U1", GetChatID(webhook.UserSource{UserId: "U1"}))
	assert.Equal(t, "G1", GetChatID(webhook.GroupSource{GroupId: "G1"}))
	assert.Equal(t, "R1", GetChatID(webhook.RoomSource{RoomId: "R1"}))
	assert.Equal(t, "", GetChatID(nil))
}

func TestIsPersonalChat(t *testing.T) {
	t.Parallel()

	assert.True(t, IsPersonalChat(webhook.UserSource{UserId: "U1"}))
	assert.False(t, IsPersonalChat(webhook.GroupSource{GroupId: "G1"}))
}
