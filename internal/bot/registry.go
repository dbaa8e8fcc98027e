package bot

import (
	"context"
	"strings"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

// Registry holds the feature modules and dispatches events to them.
type Registry struct {
	handlers []Handler
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make([]Handler, 0),
	}
}

// Register adds a handler. Dispatch order is registration order.
func (r *Registry) Register(h Handler) {
	r.handlers = append(r.handlers, h)
}

// DispatchMessage routes a text message to the first handler that
// claims it. Returns nil when no handler matched.
func (r *Registry) DispatchMessage(ctx context.Context, text string) []messaging_api.MessageInterface {
	for _, h := range r.handlers {
		if h.CanHandle(text) {
			return h.HandleMessage(ctx, text)
		}
	}
	return nil
}

// DispatchPostback routes postback data by its "<module>:" prefix.
func (r *Registry) DispatchPostback(ctx context.Context, data string) []messaging_api.MessageInterface {
	for _, h := range r.handlers {
		prefix := h.Name() + ":"
		if strings.HasPrefix(data, prefix) {
			return h.HandlePostback(ctx, strings.TrimPrefix(data, prefix))
		}
	}
	return nil
}

// GetHandler returns a registered handler by name, or nil.
func (r *Registry) GetHandler(name string) Handler {
	for _, h := range r.handlers {
		if h.Name() == name {
			return h
		}
	}
	return nil
}
