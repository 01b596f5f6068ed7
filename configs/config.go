package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Debug("No .env file found, reading from system environment variables")
	}

	return os.Getenv(key)
}
