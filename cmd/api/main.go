package main

import (
	"os"

	"superhero-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env for development/local; production uses system env vars.
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using system environment variables")
	}

	env := getEnv("APP_ENV", "development")
	logger.Init(env)

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	Serve()
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
