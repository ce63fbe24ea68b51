package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	APIBaseURL string // Remote education API base, e.g. https://host/api
	AssetBase  string // Origin prefix for stored file paths (thumbnails, content files)

	SessionDBName string // SQLite file backing the session store
	SessionTTLHrs int    // Session expiry in hours
	SessionCookie string
	SessionGCSpec string // cron spec for purging expired session rows

	SendGridKey      string
	EmailSender      string
	ContactRecipient string
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
		Port: getEnv("PORT", "3000"),

		APIBaseURL: getEnv("EDU_API_BASE_URL", "https://sophisticated-eden-dr-white004-48b8c072.koyeb.app/api"),
		AssetBase:  getEnv("ASSET_BASE_URL", "https://res.cloudinary.com/dlev4b4pu"),

		SessionDBName: getEnv("SESSION_DB_NAME", "eduportal.db"),
		SessionTTLHrs: getEnvInt("SESSION_TTL_HOURS", 24),
		SessionCookie: getEnv("SESSION_COOKIE", "eduportal_session"),
		SessionGCSpec: getEnv("SESSION_GC_SPEC", "@every 1h"),

		SendGridKey:      getEnv("SENDGRID_API_KEY", ""),
		EmailSender:      getEnv("EMAIL_SENDER", "no-reply@edumanager.example"),
		ContactRecipient: getEnv("CONTACT_RECIPIENT", "support@edumanager.example"),
	}

	// Validate critical configuration
	if AppConfig.SendGridKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Contact form mail will fail.")
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
