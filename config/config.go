package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	Port      string
	JWTSecret string

	// Optional collaborators. Empty disables the feature.
	RedisAddr string
	RedisPass string
	AMQPURL   string

	// Directory holding districts.json / upazilas.json seed files.
	GeoDataDir string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func LoadConfig() Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := Config{
		MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:    getEnv("MONGO_DB", "bloodlink"),
		Port:       getEnv("PORT", "5001"),
		JWTSecret:  getEnv("JWT_SECRET", ""),
		RedisAddr:  getEnv("REDIS_ADDR", ""),
		RedisPass:  getEnv("REDIS_PASSWORD", ""),
		AMQPURL:    getEnv("AMQP_URL", ""),
		GeoDataDir: getEnv("GEO_DATA_DIR", "data"),
	}
	return cfg
}
