package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port        string
	FrontendURL string
	JWTKey      string
	SaltRound   int

	EmailSender string
	Password    string // SMTP App Password
	SMTPHost    string
	SMTPPort    string

	RazorpayApiURL        string
	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:        getEnv("PORT", "4000"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		JWTKey:      getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound:   getEnvInt("SALT_ROUND", 10),

		EmailSender: getEnv("MAIL_USER", "defaultSecret"),
		Password:    getEnv("MAIL_PASS", "defaultSecret"),
		SMTPHost:    getEnv("MAIL_HOST", "smtp-relay.brevo.com"),
		SMTPPort:    getEnv("MAIL_PORT", "587"),

		RazorpayApiURL:        getEnv("RAZORPAY_API_URL", "https://api.razorpay.com/v1/"),
		RazorpayKeyID:         getEnv("RAZORPAY_KEY", ""),
		RazorpayKeySecret:     getEnv("RAZORPAY_SECRET", ""),
		RazorpayWebhookSecret: getEnv("RAZORPAY_WEBHOOK_SECRET", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.RazorpayKeyID == "" {
		log.Println("Warning: RAZORPAY_KEY is not set. Payment capture will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
