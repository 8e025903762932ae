package main

import (
	"log"

	"github.com/joho/godotenv"

	"ep-server/config"
	"ep-server/di"
)

func main() {
	// Load environment variables; a missing .env is fine outside local dev.
	if err := godotenv.Load(); err == nil {
		log.Println("Environment loaded from .env")
	}

	env := config.GetEnvOrDefault("APP_ENV", "dev")
	container, err := di.NewContainer(env)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	log.Printf("Venue catalog ready: %d venues, %d rows dropped",
		container.Catalog.Size(), container.Catalog.DroppedRows())

	container.EventPlannerHttpServer.Start()
}
