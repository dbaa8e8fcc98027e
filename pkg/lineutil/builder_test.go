package lineutil

import (
	"testing"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextMessage(t *testing.T) {
	t.Parallel()

	msg := NewTextMessage("hello")
	assert.Equal(t, "hello", msg.Text)
}

func TestNewQuickReply(t *testing.T) {
	t.Parallel()

	qr := NewQuickReply([]QuickReplyItem{
		{Action: NewMessageAction("Today S1", "today s1")},
		{Action: NewPostbackAction("Help", "schedule:help"), ImageURL: "https://example.com/i.png"},
	})

	require.Len(t, qr.Items, 2)
	assert.Empty(t, qr.Items[0].ImageUrl)
	assert.Equal(t, "https://example.com/i.png", qr.Items[1].ImageUrl)

	action, ok := qr.Items[0].Action.(*messaging_api.MessageAction)
	require.True(t, ok)
	assert.Equal(t, "today s1", action.Text)
}
