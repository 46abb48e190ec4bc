package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string
	// SMTP Configuration
	SMTPHost               string
	SMTPPort               int
	SMTPImplicitTLS        bool // SMTPS on connect; false means STARTTLS is mandatory
	SMTPInsecureSkipVerify bool // Disables certificate validation, keep false outside local testing
	SMTPTimeout            time.Duration
	SMTPUsername           string // Also used as the sender address
	SMTPPassword           string
	SMTPFromName           string
	ContactEmailTo         string
	ContactEmailBCC        string
	// Fallback persistence
	FallbackDir string
	// CORS
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored when the file is missing)
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		// SMTP Configuration
		SMTPHost:               getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:               getEnvInt("SMTP_PORT", 465),
		SMTPImplicitTLS:        getEnvBool("SMTP_IMPLICIT_TLS", true),
		SMTPInsecureSkipVerify: getEnvBool("SMTP_INSECURE_SKIP_VERIFY", false),
		SMTPTimeout:            getEnvDuration("SMTP_TIMEOUT", 15*time.Second),
		SMTPUsername:           getEnv("SMTP_USERNAME", getEnv("GMAIL_USER", "")),
		// App password first, then the plain account password
		SMTPPassword:    getEnv("SMTP_PASSWORD", getEnv("GMAIL_APP_PASSWORD", getEnv("GMAIL_PASS", ""))),
		SMTPFromName:    getEnv("SMTP_FROM_NAME", "No reply"),
		ContactEmailTo:  getEnv("CONTACT_EMAIL_TO", ""),
		ContactEmailBCC: getEnv("CONTACT_EMAIL_BCC", ""),
		FallbackDir:     getEnv("FALLBACK_DIR", "submissions"),
		AllowedOrigins:  getEnvList("ALLOWED_ORIGINS"),
	}

	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: SMTP credentials are missing. Every submission will be saved to the fallback directory.")
	}
	if cfg.ContactEmailTo == "" {
		log.Println("WARNING: CONTACT_EMAIL_TO is not set. Contact emails cannot be delivered.")
	}
	if cfg.SMTPInsecureSkipVerify {
		log.Println("WARNING: SMTP_INSECURE_SKIP_VERIFY is enabled. The mail server certificate will not be verified.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks and trailing slashes
func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
