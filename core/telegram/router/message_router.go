package router

import (
	"time"

	tele "gopkg.in/telebot.v4"

	tg "skladbot/core/telegram"
	"skladbot/core/telegram/middleware"
)

// TextOptions controls free-text routing.
type TextOptions struct {
	// Fallback handles every text message that is not a registered slash
	// command; the dialog engine lives behind it.
	Fallback tele.HandlerFunc
}

// TextRoutes builds the handler for incoming text updates: registered slash
// commands are dispatched through the registry, everything else goes to the
// fallback handler.
func TextRoutes(reg *tg.Registry, opts TextOptions) []tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()

		if reg != nil {
			if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil {
				name := normalizeHandlerName(key)
				return handleWithSummary(c, name, start, func() error {
					return cmd.Handler(c)
				})
			}
		}

		fb := opts.Fallback
		if fb == nil && reg != nil {
			fb = reg.TextFallback()
		}
		if fb != nil {
			return handleWithSummary(c, "dialog", start, func() error {
				return fb(c)
			})
		}

		logHandlerSummary(c, "unknown_text", start, "skip", nil)
		return nil
	}

	return []tg.Route{
		{
			Endpoint: tele.OnText,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
		},
	}
}
