package bot

import "github.com/line/line-bot-sdk-go/v8/linebot/webhook"

// GetChatID extracts the chat ID from a LINE source: user ID for
// personal chats, group ID for groups, room ID for rooms.
func GetChatID(source webhook.SourceInterface) string {
	switch s := source.(type) {
	case webhook.UserSource:
		return s.UserId
	case webhook.GroupSource:
		return s.GroupId
	case webhook.RoomSource:
		return s.RoomId
	}
	return ""
}

// IsPersonalChat reports whether the source is a 1-on-1 chat.
func IsPersonalChat(source webhook.SourceInterface) bool {
	_, ok := source.(webhook.UserSource)
	return ok
}
