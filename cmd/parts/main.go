package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Bryan-Quispe/Computer-Parts/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		log.Printf("failed to init app: %v\n", err)
		stop()
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		log.Printf("app stopped with error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
