package app

import (
	"context"
	"html"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"botrunner/internal/dispatch"
)

func init() {
	Router.Command("start", handleStart)
	Router.Command("help", handleHelp)
	Router.Command("ping", handlePing)
	Router.Message(handleEcho)
}

func logStartup(_ context.Context, bot *tgbotapi.BotAPI) error {
	log.Printf("bot @%s is up", bot.Self.UserName)
	return nil
}

func handleStart(c *dispatch.Ctx) error {
	return c.Reply("Hi! I am alive. Try /help.")
}

func handleHelp(c *dispatch.Ctx) error {
	return c.Reply("<b>Commands</b>\n/start - greeting\n/ping - liveness check\n/help - this message")
}

func handlePing(c *dispatch.Ctx) error {
	return c.Reply("pong")
}

// handleEcho repeats plain text back. Replies use HTML parse mode, so the
// text has to be escaped.
func handleEcho(c *dispatch.Ctx) error {
	m := c.Update.Message
	if m == nil || m.Text == "" {
		return nil
	}
	return c.Reply(html.EscapeString(m.Text))
}
