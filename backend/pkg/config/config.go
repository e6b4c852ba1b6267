package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// App
	Port string
	Env  string

	// Assistant (OpenAI-compatible endpoint used for draft improvement
	// and place search)
	AssistantBaseURL string
	AssistantAPIKey  string
	AssistantModel   string

	// Session
	//
	// SignupName/SignupHandle are the registration hand-off values a
	// brand-new registrant leaves behind; when both are present the
	// session starts with a fresh user instead of the seeded demo actor.
	SignupName   string
	SignupHandle string
	SeedDemo     bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		AssistantBaseURL: getEnv("ASSISTANT_BASE_URL", "http://localhost:4000"),
		AssistantAPIKey:  getEnv("ASSISTANT_API_KEY", ""),
		AssistantModel:   getEnv("ASSISTANT_MODEL", "gpt-4o-mini"),
		SignupName:       getEnv("SIGNUP_NAME", ""),
		SignupHandle:     getEnv("SIGNUP_HANDLE", ""),
		SeedDemo:         getEnvBool("SEED_DEMO", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.AssistantBaseURL == "" {
		return fmt.Errorf("ASSISTANT_BASE_URL is required")
	}
	if c.AssistantModel == "" {
		return fmt.Errorf("ASSISTANT_MODEL is required")
	}
	// Signup values are optional; both must be set for a registration
	// hand-off to take effect
	if (c.SignupName == "") != (c.SignupHandle == "") {
		return fmt.Errorf("SIGNUP_NAME and SIGNUP_HANDLE must be set together")
	}
	return nil
}

// HasSignup reports whether a registration hand-off is pending
func (c *Config) HasSignup() bool {
	return c.SignupName != "" && c.SignupHandle != ""
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if result, err := strconv.ParseBool(value); err == nil {
			return result
		}
	}
	return defaultValue
}
