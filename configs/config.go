package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	WeatherAPIURL    string
	PredictionAPIURL string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		DBSource:         getEnv("DB_SOURCE", "fisheries.db"),
		Port:             getEnv("PORT", "8000"),
		JWTSecret:        getEnv("JWT_SECRET", "changeme"),
		JWTTTL:           time.Duration(24) * time.Hour,
		WeatherAPIURL:    getEnv("WEATHER_API_URL", "https://api.open-meteo.com/v1/forecast"),
		PredictionAPIURL: getEnv("PREDICTION_API_URL", "http://localhost:8001/api/v1/predict"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// Helper for code that cannot run without the value (e.g. seeding).
func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
