package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDBURL(t *testing.T) {
	// t.Setenv registers the restore; the variable must be absent, not empty
	t.Setenv("DB_URL", "placeholder")
	os.Unsetenv("DB_URL")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/synthesistalk")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.AppEnv)
	require.True(t, cfg.IsDevelopment())
	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.Equal(t, "https://api.groq.com/openai/v1", cfg.GroqBaseURL)
	require.Equal(t, "llama3-70b-8192", cfg.ChatModel)
}

func TestAllowedOriginsNormalization(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " https://a.example , https://b.example ,, "}
	require.Equal(t, "https://a.example,https://b.example", cfg.AllowedOrigins())
}
