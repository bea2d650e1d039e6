// cmd/seed/main.go
package main

import (
	"log"

	"github.com/highgrip/storefront-backend/internal/config"
	"github.com/highgrip/storefront-backend/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := database.SeedInitialData(db); err != nil {
		log.Fatal("Failed to seed data:", err)
	}
}
