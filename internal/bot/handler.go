// Package bot provides the handler interface and event processor that
// route LINE webhook events to feature modules.
package bot

import (
	"context"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

// Handler is the interface every feature module implements.
type Handler interface {
	// Name identifies the module. It doubles as the postback prefix:
	// postback data is routed as "<name>:<payload>".
	Name() string

	// CanHandle reports whether this handler wants the given text.
	CanHandle(text string) bool

	// HandleMessage processes a sanitized text message and returns the
	// reply messages (max 5 per LINE reply).
	HandleMessage(ctx context.Context, text string) []messaging_api.MessageInterface

	// HandlePostback processes a postback payload with the module
	// prefix already stripped.
	HandlePostback(ctx context.Context, data string) []messaging_api.MessageInterface
}
