package main

import (
	"context"
	"log"
	"time"

	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer conn.Close()

	if err := db.RunMigrations(ctx, conn); err != nil {
		log.Fatalf("run migrations: %v", err)
	}
	log.Print("migrations applied")
}
