package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"botrunner/internal/app"
)

// Runner wires the pre-existing app package to a freshly built bot client
// and keeps the platform health check green while polling runs.
type Runner struct {
	cfg    Config
	bot    *tgbotapi.BotAPI
	health *HealthServer
}

func New(cfg Config) (*Runner, error) {
	b, err := tgbotapi.NewBotAPIWithClient(cfg.Token, tgbotapi.APIEndpoint, newSession())
	if err != nil {
		return nil, fmt.Errorf("bot api: %w", err)
	}

	return &Runner{
		cfg:    cfg,
		bot:    b,
		health: NewHealthServer(cfg.Port),
	}, nil
}

// Attach points the app package at this runner's bot and wires its router
// and startup hook into the dispatcher. Calling it again is a no-op: the
// bot reference is simply rewritten, nothing is registered twice.
func (r *Runner) Attach() {
	app.Bot = r.bot

	if app.Attached || app.DP == nil {
		return
	}

	if app.Router != nil {
		app.DP.IncludeRouter(app.Router)
	}
	if app.OnStartup != nil {
		app.DP.OnStartup(app.OnStartup)
	}
	app.Attached = true
}

// Run starts the health listener, wires the app and blocks in the
// dispatcher's polling loop. The listener is closed when polling returns,
// whatever the reason.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.health.Start(); err != nil {
		return err
	}
	defer r.health.Close()

	r.Attach()

	log.Printf("starting polling as @%s", r.bot.Self.UserName)
	return app.DP.StartPolling(ctx, r.bot)
}
