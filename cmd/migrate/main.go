package main

import (
	"github.com/Sbonga74/sg-bank-web-app/internal/config" // Custom import path (Config)
	"github.com/Sbonga74/sg-bank-web-app/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	db.Migrate(cfg.DSN()) // Create or update the users and transactions tables
}
