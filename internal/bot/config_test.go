package bot

import (
	"strings"
	"testing"

	"botrunner/internal/app"
)

func setAppToken(t *testing.T, token string) {
	t.Helper()
	old := app.APIToken
	app.APIToken = token
	t.Cleanup(func() { app.APIToken = old })
}

func TestLoadConfigFailsWithoutAnyToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("PORT", "")
	setAppToken(t, "")

	_, err := LoadConfigFromEnv()
	if err == nil {
		t.Fatal("want an error when no token is resolvable")
	}
	if !strings.Contains(err.Error(), "BOT_TOKEN") {
		t.Errorf("error %q should name BOT_TOKEN", err)
	}
}

func TestLoadConfigFallsBackToAppToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	setAppToken(t, "123:baked-in")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Token != "123:baked-in" {
		t.Errorf("token = %q, want the app fallback", cfg.Token)
	}
}

func TestLoadConfigEnvTokenWins(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:from-env")
	setAppToken(t, "123:baked-in")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Token != "123:from-env" {
		t.Errorf("token = %q, want the env value", cfg.Token)
	}
}

func TestLoadConfigPort(t *testing.T) {
	cases := []struct {
		env  string
		want int
	}{
		{"", 8000},
		{"9100", 9100},
		{"  9100  ", 9100},
		{"nope", 8000},
		{"0", 8000},
		{"70000", 8000},
	}

	t.Setenv("BOT_TOKEN", "123:test")
	for _, tc := range cases {
		t.Setenv("PORT", tc.env)
		cfg, err := LoadConfigFromEnv()
		if err != nil {
			t.Fatalf("PORT=%q: %v", tc.env, err)
		}
		if cfg.Port != tc.want {
			t.Errorf("PORT=%q: port = %d, want %d", tc.env, cfg.Port, tc.want)
		}
	}
}
