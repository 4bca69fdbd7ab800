// Package config loads application configuration from environment
// variables. The resulting Config is built once in main and injected into
// components; nothing in here is mutated after Load returns.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	Port   string `env:"PORT" envDefault:"3000"`

	// Database (PostgreSQL)
	DBURL string `env:"DB_URL,required"`

	// Session tokens
	JWTSecret string        `env:"JWT_SECRET" envDefault:"change_this_to_a_random_string"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// Chat-completion provider (Groq, OpenAI-compatible)
	GroqAPIKey  string `env:"GROQ_API_KEY"`
	GroqBaseURL string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	ChatModel   string `env:"CHAT_MODEL" envDefault:"llama3-70b-8192"`

	// Comma-separated list of allowed CORS origins
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:5173,http://127.0.0.1:5173"`
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// AllowedOrigins normalizes the comma-separated origins list.
func (c *Config) AllowedOrigins() string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	trimmed := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			trimmed = append(trimmed, p)
		}
	}
	return strings.Join(trimmed, ",")
}

// Load parses environment variables and returns a Config.
// Returns an error if required variables are missing.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
