package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI    string
	MongoDB     string
	Port        string
	JWTSecret   string
	JWTTTLHours string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := Config{
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "devconnector"),
		Port:        getEnv("PORT", "5000"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTTTLHours: getEnv("JWT_TTL_HOURS", "100"),
	}
	return cfg
}
