package telegram

import (
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	"skladbot/core/telegram/middleware"
)

// RateLimitSettings configures the shared middleware chain rate limiting.
type RateLimitSettings struct {
	IntervalMS     int
	ExcludeUpdates []string
}

// DefaultMiddlewares builds the shared middleware chain for the bot.
func DefaultMiddlewares(rl RateLimitSettings, onLimited func(tele.Context) error) []Middleware {
	mws := []Middleware{
		{Name: "recover", Use: middleware.RecoverMiddleware},
	}

	interval := time.Duration(rl.IntervalMS) * time.Millisecond
	if interval > 0 {
		ex := make(map[string]struct{}, len(rl.ExcludeUpdates))
		for _, t := range rl.ExcludeUpdates {
			ex[strings.ToLower(t)] = struct{}{}
		}
		opts := middleware.RateLimitOptions{
			Interval: interval,
			Exclude:  ex,
		}
		if onLimited != nil {
			opts.OnLimited = onLimited
		}
		mws = append(mws, Middleware{
			Name: "rate_limit",
			Use:  middleware.RateLimitMiddleware(opts),
		})
	}

	mws = append(mws,
		Middleware{Name: "logger", Use: middleware.LoggerMiddleware},
		Middleware{Name: "metrics", Use: middleware.MessageMetricsMiddleware},
	)

	return mws
}
