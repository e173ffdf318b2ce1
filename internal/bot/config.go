package bot

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"botrunner/internal/app"
)

const defaultPort = 8000

type Config struct {
	Token string
	Port  int
}

// LoadConfigFromEnv resolves the bot token and the health-check port.
// BOT_TOKEN falls back to the token baked into the app package; neither
// being set is fatal. A bad PORT falls back to the default so the shim
// still comes up.
func LoadConfigFromEnv() (Config, error) {
	token := strings.TrimSpace(os.Getenv("BOT_TOKEN"))
	if token == "" {
		token = strings.TrimSpace(app.APIToken)
	}
	if token == "" {
		return Config{}, errors.New("BOT_TOKEN missing: set the env var or bake APIToken into the app package")
	}

	port := defaultPort
	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > 65535 {
			log.Printf("ignoring bad PORT=%q, using %d", p, defaultPort)
		} else {
			port = n
		}
	}

	return Config{Token: token, Port: port}, nil
}
