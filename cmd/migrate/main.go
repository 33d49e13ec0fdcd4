// Command migrate applies the database schema.
package main

import (
	"log"

	"ripple/internal/config"
	"ripple/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}

	// Connect auto-migrates outside production; run explicitly so the
	// command also works against a production config.
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	log.Println("schema applied")
	return nil
}
