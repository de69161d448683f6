package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 25, cfg.DB.MaxOpen)
	assert.Equal(t, "expenso", cfg.JWT.Issuer)
	assert.Equal(t, "https://open.er-api.com/v6/latest/HKD", cfg.FX.RateURL)
	assert.Equal(t, "grok-3-mini-fast", cfg.Parser.Model)
	assert.Equal(t, "https://api.x.ai/v1", cfg.Parser.BaseURL)
	assert.Equal(t, 30, cfg.Parser.TimeoutSecs)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EXPENSO_SERVER_PORT", ":9999")
	t.Setenv("EXPENSO_DB_NAME", "expenso_test")
	t.Setenv("EXPENSO_PARSER_API_KEY", "xai-secret")
	t.Setenv("EXPENSO_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Port)
	assert.Equal(t, "expenso_test", cfg.DB.Name)
	assert.Equal(t, "xai-secret", cfg.Parser.APIKey)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "7777")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Server.Port)
}

func TestDBConfig_DSN(t *testing.T) {
	d := DBConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", Name: "expenso_db", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5432/expenso_db?sslmode=disable", d.DSN())
}
