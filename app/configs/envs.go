package configs

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string

	MaxCategoryDepth     int
	MaxPageSize          int
	AttributeInheritance bool
	AllowAdhocAttributes bool
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Msg("No .env file found")
	}

	return ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       getEnv("APP_PORT", ":8080"),

		MaxCategoryDepth:     getEnvInt("MAX_CATEGORY_DEPTH", 5),
		MaxPageSize:          getEnvInt("MAX_PAGE_SIZE", 100),
		AttributeInheritance: getEnvBool("ATTRIBUTE_INHERITANCE", true),
		AllowAdhocAttributes: getEnvBool("ALLOW_ADHOC_ATTRIBUTES", false),
	}

}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("key", key).Msg("invalid integer in env, using default")
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Warn().Str("key", key).Msg("invalid boolean in env, using default")
	}
	return fallback
}

var LoadENV = LoadEnv()
