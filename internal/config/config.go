package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	FX     FXConfig
	Parser ParserConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for receipt file storage.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// FXConfig holds exchange-rate fetch settings.
type FXConfig struct {
	RateURL     string `mapstructure:"rate_url"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// ParserConfig holds remote LLM fallback settings.
type ParserConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	BaseURL     string `mapstructure:"base_url"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// Load reads configuration from environment variables with the EXPENSO_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EXPENSO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "expenso")
	v.SetDefault("db.password", "expenso_secret")
	v.SetDefault("db.name", "expenso_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "expenso")

	// S3 defaults
	v.SetDefault("s3.region", "ap-east-1")
	v.SetDefault("s3.bucket", "expenso-receipts")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 20)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// FX defaults
	v.SetDefault("fx.rate_url", "https://open.er-api.com/v6/latest/HKD")
	v.SetDefault("fx.timeout_secs", 10)

	// Parser (remote LLM fallback) defaults
	v.SetDefault("parser.api_key", "")
	v.SetDefault("parser.model", "grok-3-mini-fast")
	v.SetDefault("parser.base_url", "https://api.x.ai/v1")
	v.SetDefault("parser.timeout_secs", 30)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":           "EXPENSO_SERVER_PORT",
		"server.read_timeout":   "EXPENSO_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "EXPENSO_SERVER_WRITE_TIMEOUT",
		"server.environment":    "EXPENSO_SERVER_ENVIRONMENT",
		"db.host":               "EXPENSO_DB_HOST",
		"db.port":               "EXPENSO_DB_PORT",
		"db.user":               "EXPENSO_DB_USER",
		"db.password":           "EXPENSO_DB_PASSWORD",
		"db.name":               "EXPENSO_DB_NAME",
		"db.sslmode":            "EXPENSO_DB_SSLMODE",
		"db.max_open":           "EXPENSO_DB_MAX_OPEN",
		"db.max_idle":           "EXPENSO_DB_MAX_IDLE",
		"jwt.secret":            "EXPENSO_JWT_SECRET",
		"jwt.access_expiry":     "EXPENSO_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":    "EXPENSO_JWT_REFRESH_EXPIRY",
		"jwt.issuer":            "EXPENSO_JWT_ISSUER",
		"s3.region":             "EXPENSO_S3_REGION",
		"s3.bucket":             "EXPENSO_S3_BUCKET",
		"s3.endpoint":           "EXPENSO_S3_ENDPOINT",
		"s3.access_key":         "EXPENSO_S3_ACCESS_KEY",
		"s3.secret_key":         "EXPENSO_S3_SECRET_KEY",
		"s3.max_file_size_mb":   "EXPENSO_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":     "EXPENSO_S3_PRESIGN_EXPIRY",
		"log.level":             "EXPENSO_LOG_LEVEL",
		"log.format":            "EXPENSO_LOG_FORMAT",
		"cors.allowed_origins":  "EXPENSO_CORS_ALLOWED_ORIGINS",
		"fx.rate_url":           "EXPENSO_FX_RATE_URL",
		"fx.timeout_secs":       "EXPENSO_FX_TIMEOUT_SECS",
		"parser.api_key":        "EXPENSO_PARSER_API_KEY",
		"parser.model":          "EXPENSO_PARSER_MODEL",
		"parser.base_url":       "EXPENSO_PARSER_BASE_URL",
		"parser.timeout_secs":   "EXPENSO_PARSER_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if EXPENSO_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("EXPENSO_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.FX = FXConfig{
		RateURL:     v.GetString("fx.rate_url"),
		TimeoutSecs: v.GetInt("fx.timeout_secs"),
	}
	cfg.Parser = ParserConfig{
		APIKey:      v.GetString("parser.api_key"),
		Model:       v.GetString("parser.model"),
		BaseURL:     v.GetString("parser.base_url"),
		TimeoutSecs: v.GetInt("parser.timeout_secs"),
	}

	return cfg, nil
}
