// Package schedule implements the timetable query module. It turns
// free-text requests like "today s3" or "2026-03-05 section 1" into
// schedule replies.
package schedule

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/campusbot/timetable-linebot-go/internal/logger"
	"github.com/campusbot/timetable-linebot-go/internal/metrics"
	"github.com/campusbot/timetable-linebot-go/internal/timetable"
	"github.com/campusbot/timetable-linebot-go/pkg/lineutil"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

// ModuleName identifies this module in logs and postback data.
const ModuleName = "schedule"

// helpKeywords trigger the usage guide instead of a query.
var helpKeywords = []string{"help", "usage", "start"}

// Handler answers timetable queries.
type Handler struct {
	interpreter *timetable.Interpreter
	resolver    *timetable.Resolver
	table       *timetable.Timetable
	calendar    *timetable.WeekCalendar
	logger      *logger.Logger
	metrics     *metrics.Metrics

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// HandlerConfig holds the dependencies for a schedule handler.
type HandlerConfig struct {
	Interpreter *timetable.Interpreter
	Resolver    *timetable.Resolver
	Timetable   *timetable.Timetable
	Calendar    *timetable.WeekCalendar
	Logger      *logger.Logger
	Metrics     *metrics.Metrics
	Now         func() time.Time
}

// NewHandler creates a schedule handler.
func NewHandler(cfg HandlerConfig) *Handler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Handler{
		interpreter: cfg.Interpreter,
		resolver:    cfg.Resolver,
		table:       cfg.Timetable,
		calendar:    cfg.Calendar,
		logger:      cfg.Logger,
		metrics:     cfg.Metrics,
		now:         now,
	}
}

// Name returns the module name.
func (h *Handler) Name() string {
	return ModuleName
}

// CanHandle claims every non-empty text. This module is the bot's only
// feature, so any message is treated as a timetable query.
func (h *Handler) CanHandle(text string) bool {
	return strings.TrimSpace(text) != ""
}

// HandleMessage interprets the text as a timetable query and replies
// with the schedule, a clarification prompt, or the usage guide.
func (h *Handler) HandleMessage(ctx context.Context, text string) []messaging_api.MessageInterface {
	log := h.logger.WithModule(ModuleName)

	if slices.ContainsFunc(helpKeywords, func(k string) bool {
		return strings.EqualFold(strings.TrimSpace(text), k)
	}) {
		log.Debug("Handling help request")
		return h.helpMessages()
	}

	query, err := h.interpreter.Interpret(text, h.now())
	if err != nil {
		if errors.Is(err, timetable.ErrSectionUnresolved) {
			log.WithField("text", text).Debug("Section not resolved")
			h.metrics.RecordQuery(metrics.OutcomeClarifySection)
			return h.clarifySection()
		}
		log.WithField("text", text).Debug("Date not resolved")
		h.metrics.RecordQuery(metrics.OutcomeClarifyDate)
		return h.clarifyDate()
	}

	result := h.resolver.Resolve(h.table, h.calendar, query)
	h.metrics.RecordQuery(outcomeLabel(result.Kind))

	log.WithField("date", query.Date.Format("2006-01-02")).
		WithField("section", query.Section).
		Debug("Resolved schedule query")

	msg := lineutil.NewTextMessage(timetable.Render(result))
	msg.QuickReply = h.quickReply(query.Section)

	return []messaging_api.MessageInterface{msg}
}

// HandlePostback handles postback payloads. "help" shows the usage
// guide; anything else is re-interpreted as a query text.
func (h *Handler) HandlePostback(ctx context.Context, data string) []messaging_api.MessageInterface {
	data = strings.TrimSpace(data)
	if data == "" || strings.EqualFold(data, "help") {
		return h.helpMessages()
	}
	return h.HandleMessage(ctx, data)
}

// outcomeLabel maps a resolution kind to its metrics label.
func outcomeLabel(kind timetable.ResultKind) string {
	switch kind {
	case timetable.SpecialDay:
		return metrics.OutcomeSpecial
	case timetable.OutOfRange:
		return metrics.OutcomeOutOfRange
	case timetable.NoData:
		return metrics.OutcomeNoData
	default:
		return metrics.OutcomeRegular
	}
}

func (h *Handler) helpMessages() []messaging_api.MessageInterface {
	first := h.calendar.FirstDate().Format("02 Jan 2006")
	last := h.calendar.LastDate().Format("02 Jan 2006")

	msg := lineutil.NewTextMessage(
		"📖 Timetable lookup\n\n" +
			"Send a day and a section in one message:\n" +
			"• today s3\n" +
			"• tomorrow section 4\n" +
			"• yesterday s5\n" +
			"• friday s2 (next Friday)\n" +
			"• 2026-03-05 s1\n\n" +
			"Sections are 1 to 6. The timetable covers " + first + " to " + last + ".",
	)
	msg.QuickReply = h.quickReply("")

	return []messaging_api.MessageInterface{msg}
}

func (h *Handler) clarifyDate() []messaging_api.MessageInterface {
	msg := lineutil.NewTextMessage(
		"I couldn't find a date in that.\n\n" +
			"Try \"today\", \"tomorrow\", a weekday like \"friday\", " +
			"or a date like 2026-03-05, e.g. \"today s3\".",
	)
	msg.QuickReply = h.quickReply("")

	return []messaging_api.MessageInterface{msg}
}

func (h *Handler) clarifySection() []messaging_api.MessageInterface {
	msg := lineutil.NewTextMessage(
		"Which section? Add s1 to s6 to your message, " +
			"e.g. \"today s3\" or \"tomorrow section 4\".",
	)
	msg.QuickReply = h.quickReply("")

	return []messaging_api.MessageInterface{msg}
}

// quickReply offers follow-up queries. When the user's section is
// known, the shortcuts reuse it.
func (h *Handler) quickReply(section string) *messaging_api.QuickReply {
	if section == "" {
		section = "1"
	}
	return lineutil.NewQuickReply([]lineutil.QuickReplyItem{
		{Action: lineutil.NewMessageAction("Today S"+section, "today s"+section)},
		{Action: lineutil.NewMessageAction("Tomorrow S"+section, "tomorrow s"+section)},
		{Action: lineutil.NewPostbackAction("Help", ModuleName+":help")},
	})
}
