package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"botrunner/internal/bot"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env not loaded, using system env")
	}

	cfg, err := bot.LoadConfigFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	r, err := bot.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Bot running. Ctrl+C to stop.")
	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
