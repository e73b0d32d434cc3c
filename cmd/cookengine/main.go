package main

import (
	"github.com/joho/godotenv"

	"github.com/bobmcallan/cookengine/internal/cli"
)

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	cli.Execute()
}
