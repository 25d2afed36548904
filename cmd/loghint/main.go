package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A local .env is a development convenience; real env vars win.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
