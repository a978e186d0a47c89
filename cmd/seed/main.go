package main

import (
	"log"

	"go-chain-ops/internal/auth"
	"go-chain-ops/internal/bootstrap"
	"go-chain-ops/internal/database"

	"github.com/joho/godotenv"
)

// Standalone migrate + seed, for provisioning a database without
// starting the server. Safe to re-run; the seed guard makes repeat
// invocations no-ops.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	database.Connect()

	if err := bootstrap.Run(database.DB, auth.NewIdentity()); err != nil {
		log.Fatal("Seeding failed:", err)
	}
	log.Println("✅ Done")
}
