package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const defaultPort = "3001"

// DefaultReceiverEmail is used when RECEIVER_EMAIL is unset. It is a placeholder,
// deployments are expected to override it.
const DefaultReceiverEmail = "inbox@example.com"

// Config is built once at startup and shared read-only by every request.
type Config struct {
	Port string `env:"EMAIL_PROXY_PORT"`
	// Brevo
	BrevoAPIKey  string        `env:"BREVO_API_KEY"`
	BrevoBaseURL string        `env:"BREVO_BASE_URL" envDefault:"https://api.brevo.com"`
	BrevoTimeout time.Duration `env:"BREVO_TIMEOUT" envDefault:"10s"`
	// Message routing
	ReceiverEmail string `env:"RECEIVER_EMAIL"`
	ReceiverName  string `env:"RECEIVER_NAME" envDefault:"Site Owner"`
	SubjectPrefix string `env:"SUBJECT_PREFIX" envDefault:"Portfolio Contact"`
	// Service
	ServiceName    string `env:"SERVICE_NAME" envDefault:"Brevo Email Proxy"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	GinMode        string `env:"GIN_MODE" envDefault:"debug"`
	SwaggerEnabled bool   `env:"SWAGGER_ENABLED" envDefault:"true"`
}

func LoadConfig() (*Config, error) {
	// Local development only; a missing .env is normal in production.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.Port == "" {
		cfg.Port = getEnv("PORT", defaultPort)
	}
	cfg.BrevoBaseURL = strings.TrimRight(cfg.BrevoBaseURL, "/")
	cfg.BrevoAPIKey = strings.TrimSpace(cfg.BrevoAPIKey)

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("config: GIN_MODE must be debug, release or test, got %q", cfg.GinMode)
	}

	if cfg.ReceiverEmail == "" {
		log.Printf("WARNING: RECEIVER_EMAIL is missing. Messages will be sent to %s.", DefaultReceiverEmail)
		cfg.ReceiverEmail = DefaultReceiverEmail
	}

	return cfg, nil
}

// HasBrevoKey reports whether the provider credential is present.
func (c *Config) HasBrevoKey() bool {
	return c.BrevoAPIKey != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
