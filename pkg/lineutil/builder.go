// Package lineutil provides small helpers for building LINE messages
// and actions.
package lineutil

import "github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

// Action is an alias for the LINE SDK action interface for convenience.
type Action = messaging_api.ActionInterface

// QuickReplyItem represents one quick reply button.
type QuickReplyItem struct {
	ImageURL string
	Action   Action
}

// NewTextMessage creates a simple text message.
func NewTextMessage(text string) *messaging_api.TextMessage {
	return &messaging_api.TextMessage{
		Text: text,
	}
}

// NewQuickReply creates a quick reply component that can be attached
// to text or template messages.
func NewQuickReply(items []QuickReplyItem) *messaging_api.QuickReply {
	quickReplyItems := make([]messaging_api.QuickReplyItem, len(items))
	for i, item := range items {
		qrItem := messaging_api.QuickReplyItem{
			Action: item.Action,
		}
		if item.ImageURL != "" {
			qrItem.ImageUrl = item.ImageURL
		}
		quickReplyItems[i] = qrItem
	}

	return &messaging_api.QuickReply{
		Items: quickReplyItems,
	}
}

// NewMessageAction creates an action that sends a message when tapped.
func NewMessageAction(label, text string) Action {
	return &messaging_api.MessageAction{
		Label: label,
		Text:  text,
	}
}

// NewPostbackAction creates an action that sends postback data when tapped.
func NewPostbackAction(label, data string) Action {
	return &messaging_api.PostbackAction{
		Label: label,
		Data:  data,
	}
}
