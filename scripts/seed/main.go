package main

import (
	"log"

	"github.com/mayankpokhriyal/neuronap/internal/config"
	"github.com/mayankpokhriyal/neuronap/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Database seeded")
}
