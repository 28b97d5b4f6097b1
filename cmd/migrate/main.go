package main

import (
	"crypto_wallet/internal/config" // Custom import path (Config)
	"crypto_wallet/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Migration only applies to the MySQL-backed store
	db.Migrate(cfg.DSN())
}
