package main

import (
	"github.com/joho/godotenv"

	"photostudio_backend/internal/app"
)

func main() {
	// .env is optional, real deployments set the environment directly.
	_ = godotenv.Load()

	app.Run()
}
