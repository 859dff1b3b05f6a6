package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"bookcms-backend/pkg/logger"
)

func main() {
	// Missing .env is fine in production; config falls back to real
	// environment variables.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger.Init(os.Getenv("APP_ENV"))

	Serve()
}
