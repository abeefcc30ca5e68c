// Package app assembles the bot: config, infrastructure, storage, the
// dialog engine and the Telegram runtime.
package app

import (
	"context"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"skladbot/core/bootstrap"
	coreconfig "skladbot/core/config"
	tg "skladbot/core/telegram"
	"skladbot/core/telegram/commands"
	"skladbot/core/telegram/helpers"
	"skladbot/core/telegram/keyboard"
	"skladbot/core/telegram/router"
	"skladbot/internal/dialog"
	"skladbot/internal/roles"
	"skladbot/internal/storage"
)

// Run wires everything together and blocks until ctx is done.
func Run(ctx context.Context, cfg *coreconfig.Config) error {
	if err := roles.Verify(); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	boot, err := bootstrap.Run(bootstrap.Options{Config: cfg})
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer boot.DB.Close()

	store := storage.New(boot.DB)
	engine := dialog.New(store, cfg.Telegram.OwnerID)

	reg := tg.NewRegistry()
	reg.RegisterCommand("/start", commands.Command{
		Handler:     startHandler(engine),
		Description: "Start the bot",
	})

	routes := router.CommandRoutes(reg)
	routes = append(routes, router.TextRoutes(reg, router.TextOptions{
		Fallback: dialogHandler(engine),
	})...)

	return tg.RunTelegram(ctx, tg.RunOptions{
		Settings: tg.Settings{
			Token:                  cfg.Telegram.Token,
			RunMode:                cfg.Telegram.RunMode,
			LongPollTimeoutSeconds: cfg.Telegram.LongPollTimeoutSeconds,
			Webhook: tg.WebhookOptions{
				Listen: cfg.Webhook.Listen,
				Port:   cfg.Webhook.Port,
				URL:    cfg.Webhook.URL,
			},
		},
		Registry: reg,
		Middlewares: tg.DefaultMiddlewares(tg.RateLimitSettings{
			IntervalMS:     cfg.RateLimit.IntervalMS,
			ExcludeUpdates: cfg.RateLimit.ExcludeUpdates,
		}, nil),
		Routes: routes,
	})
}

func startHandler(engine *dialog.Engine) tele.HandlerFunc {
	return func(c tele.Context) error {
		reply, err := engine.HandleStart(helpers.BuildContext(c), inputFrom(c))
		if err != nil {
			return err
		}
		return sendReply(c, reply)
	}
}

func dialogHandler(engine *dialog.Engine) tele.HandlerFunc {
	return func(c tele.Context) error {
		reply, err := engine.Handle(helpers.BuildContext(c), inputFrom(c))
		if err != nil {
			return err
		}
		return sendReply(c, reply)
	}
}

func inputFrom(c tele.Context) dialog.Input {
	sender := c.Sender()
	if sender == nil {
		return dialog.Input{Text: c.Text()}
	}
	name := strings.TrimSpace(strings.TrimSpace(sender.FirstName) + " " + strings.TrimSpace(sender.LastName))
	return dialog.Input{UserID: sender.ID, Name: name, Text: c.Text()}
}

// sendReply maps the engine reply to Telegram: empty text means no
// reply at all, a menu becomes a resized reply keyboard.
func sendReply(c tele.Context, r dialog.Reply) error {
	if r.Text == "" {
		return nil
	}
	if r.Menu != nil {
		return helpers.SendWithKeyboard(c, r.Text, keyboard.FromRows(r.Menu))
	}
	return helpers.SendText(c, r.Text)
}
