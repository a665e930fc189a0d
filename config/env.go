package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	JWTSecret       string
	JWTExpiry       string
	SMTPHost        string
	SMTPPort        int
	SMTPSecure      bool
	SMTPUser        string
	SMTPPass        string
	SMTPFrom        string
	EnquiryEmail    string
	RateLimitWindow time.Duration
	RateLimitMax    int
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		smtpPort = 587
	}

	rateLimitMax, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX", "3"))
	if rateLimitMax < 1 {
		rateLimitMax = 3
	}

	rateLimitWindow, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "60s"))
	if err != nil {
		rateLimitWindow = 60 * time.Second
	}

	AppConfig = &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("APP_PORT", getEnv("PORT", "8082")),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "maison_decor"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		JWTExpiry:       getEnv("JWT_EXPIRY", "24h"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        smtpPort,
		SMTPSecure:      getEnv("SMTP_SECURE", "false") == "true",
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPass:        os.Getenv("SMTP_PASS"),
		SMTPFrom:        getEnv("SMTP_FROM", os.Getenv("SMTP_USER")),
		EnquiryEmail:    getEnv("ENQUIRY_EMAIL", os.Getenv("SMTP_USER")),
		RateLimitWindow: rateLimitWindow,
		RateLimitMax:    rateLimitMax,
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
