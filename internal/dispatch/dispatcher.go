package dispatch

import (
	"context"
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// StartupHook runs once before polling begins. An error aborts startup.
type StartupHook func(ctx context.Context, bot *tgbotapi.BotAPI) error

// Dispatcher owns the long-polling loop and fans updates out to its
// routers in attach order.
type Dispatcher struct {
	// ParseMode is applied by Ctx.Reply. Defaults to HTML.
	ParseMode string
	// PollTimeout is the long-poll timeout in seconds.
	PollTimeout int

	mu      sync.Mutex
	routers []*Router
	startup []StartupHook
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		ParseMode:   tgbotapi.ModeHTML,
		PollTimeout: 30,
	}
}

// IncludeRouter attaches r. Attaching the same router again is a no-op.
func (d *Dispatcher) IncludeRouter(r *Router) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, have := range d.routers {
		if have == r {
			return
		}
	}
	d.routers = append(d.routers, r)
}

// Routers returns the number of attached routers.
func (d *Dispatcher) Routers() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.routers)
}

// OnStartup registers a hook to run before polling starts.
func (d *Dispatcher) OnStartup(h StartupHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.startup = append(d.startup, h)
}

// StartupHooks returns the number of registered startup hooks.
func (d *Dispatcher) StartupHooks() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.startup)
}

// StartPolling runs the startup hooks, then consumes updates until the
// update channel closes or ctx is canceled. Cancellation is a normal
// shutdown, not an error.
func (d *Dispatcher) StartPolling(ctx context.Context, bot *tgbotapi.BotAPI) error {
	d.mu.Lock()
	hooks := append([]StartupHook(nil), d.startup...)
	d.mu.Unlock()

	for _, h := range hooks {
		if err := h(ctx, bot); err != nil {
			return fmt.Errorf("startup hook: %w", err)
		}
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = d.PollTimeout
	updates := bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			bot.StopReceivingUpdates()
			return nil
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			d.Dispatch(bot, upd)
		}
	}
}

// Dispatch offers one update to the routers until one takes it.
func (d *Dispatcher) Dispatch(bot *tgbotapi.BotAPI, upd tgbotapi.Update) {
	d.mu.Lock()
	routers := append([]*Router(nil), d.routers...)
	d.mu.Unlock()

	c := &Ctx{Bot: bot, Update: upd, parseMode: d.ParseMode}
	for _, r := range routers {
		if r.route(c) {
			return
		}
	}
}
