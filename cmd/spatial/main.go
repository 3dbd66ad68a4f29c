// Command spatial runs the spatial layout pipeline against a document and
// prints the reconstructed label:value text, detected tables, or spacing
// statistics.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/docfield/spatial/internal/config"
	"github.com/docfield/spatial/internal/logger"
)

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := execute(cfg); err != nil {
		os.Exit(1)
	}
}
