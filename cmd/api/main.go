package main

import (
	"context"
	"log"

	"inkwell/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Run migrations and build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	log.Println("inkwell api starting")
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap api failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("api shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("inkwell api stopped with error: %v", err)
	}
}
