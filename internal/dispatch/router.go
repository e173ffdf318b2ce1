package dispatch

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandlerFunc handles one update. A returned error is logged; it never
// stops the polling loop.
type HandlerFunc func(c *Ctx) error

// Ctx carries one update plus the bot it arrived on.
type Ctx struct {
	Bot    *tgbotapi.BotAPI
	Update tgbotapi.Update

	parseMode string
}

// Reply sends text back to the chat the update came from, with the
// dispatcher's default parse mode applied.
func (c *Ctx) Reply(text string) error {
	msg := tgbotapi.NewMessage(c.Update.Message.Chat.ID, text)
	msg.ParseMode = c.parseMode
	_, err := c.Bot.Send(msg)
	return err
}

// Router maps commands and plain messages to handlers.
type Router struct {
	commands map[string]HandlerFunc
	messages []HandlerFunc
}

func NewRouter() *Router {
	return &Router{commands: make(map[string]HandlerFunc)}
}

// Command registers a handler for /name.
func (r *Router) Command(name string, h HandlerFunc) {
	r.commands[name] = h
}

// Message registers a handler for non-command text messages. The first
// registered handler takes the update.
func (r *Router) Message(h HandlerFunc) {
	r.messages = append(r.messages, h)
}

// route reports whether some handler took the update.
func (r *Router) route(c *Ctx) bool {
	m := c.Update.Message
	if m == nil {
		return false
	}

	if m.IsCommand() {
		h, ok := r.commands[m.Command()]
		if !ok {
			return false
		}
		if err := h(c); err != nil {
			log.Printf("handler /%s: %v", m.Command(), err)
		}
		return true
	}

	if len(r.messages) == 0 {
		return false
	}
	if err := r.messages[0](c); err != nil {
		log.Printf("message handler: %v", err)
	}
	return true
}
