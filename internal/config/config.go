package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	RedisAddr string

	// Upstream AI gateways. An empty vendor key falls back to sample vendors;
	// chat only serves canned replies when local mode is set explicitly.
	GeminiAPIKey     string
	ChatLocalMode    bool
	VendorGatewayKey string
	VendorGatewayURL string

	MailWebhookURL string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:           os.Getenv("DB_HOST"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBPort:           os.Getenv("DB_PORT"),
		AppPort:          os.Getenv("APP_PORT"),
		AppEnv:           os.Getenv("APP_ENV"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		ChatLocalMode:    os.Getenv("CHAT_LOCAL_MODE") == "true",
		VendorGatewayKey: os.Getenv("VENDOR_GATEWAY_KEY"),
		VendorGatewayURL: os.Getenv("VENDOR_GATEWAY_URL"),
		MailWebhookURL:   os.Getenv("MAIL_WEBHOOK_URL"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
