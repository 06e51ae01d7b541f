package confs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadConfig loads environment variables from a .env file if present.
// Runtime settings are read straight from the environment afterwards.
func LoadConfig() error {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}
	return nil
}

// ListenAddr returns the address the HTTP server binds to.
func ListenAddr() string {
	if listen := os.Getenv("LISTEN"); listen != "" {
		return listen
	}
	return "0.0.0.0:3536"
}
