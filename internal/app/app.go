// Package app is the bot application the runner wraps. The runner relies
// only on the exported surface here: Bot (overwritable), DP, Router, the
// optional OnStartup hook and the APIToken fallback.
package app

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"botrunner/internal/dispatch"
)

// APIToken is an optional baked-in token, used only when BOT_TOKEN is not
// set in the environment. Kept empty in source; deployments set BOT_TOKEN.
var APIToken string

// Bot is the client handlers send through. The runner overwrites it at
// startup with one carrying safer network defaults.
var Bot *tgbotapi.BotAPI

// DP drives polling and routes updates.
var DP = dispatch.NewDispatcher()

// Router holds this app's handlers. The runner attaches it to DP.
var Router = dispatch.NewRouter()

// OnStartup runs once before polling begins. Nil disables the hook.
var OnStartup dispatch.StartupHook = logStartup

// Attached records that a runner already wired Router and OnStartup into
// DP, so a second initialization pass does not duplicate them.
var Attached bool
