package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	RedisAddr     string
	RedisPassword string
	OrdersChannel string
	MigrationsDir string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", getEnv("PORT", "8082")),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "order_service"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		OrdersChannel: getEnv("ORDERS_CHANNEL", "orders"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
