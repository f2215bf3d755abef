package main

import (
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/rsantiago76/BetterMe-sub000/internal/config"
	"github.com/rsantiago76/BetterMe-sub000/internal/dbmigrate"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: go run ./cmd/migrate [up|status|down]")
	}

	command := os.Args[1]
	switch command {
	case "up", "status", "down":
	default:
		log.Fatalf("unsupported command %q (allowed: up, status, down)", command)
	}

	cfg := config.Load()
	dbURL, source, err := dbmigrate.SelectDatabaseURL(cfg, true)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("migrate: command=%s using=%s", command, source)

	if err := dbmigrate.Run(command, dbURL, dbmigrate.DefaultMigrationsDir); err != nil {
		log.Fatal(err)
	}

	log.Printf("migrate: %s completed successfully", command)
}
