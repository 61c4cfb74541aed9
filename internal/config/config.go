package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Compiler  CompilerConfig
	R2        R2Config
	Database  DatabaseConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type CompilerConfig struct {
	Bin       string
	OutputDir string
	Timeout   time.Duration
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
}

type AuthConfig struct {
	// JWTSecret enables bearer-token auth on the resume routes when set.
	JWTSecret string
}

type RateLimitConfig struct {
	// PerMinute caps generate requests per client per minute; zero disables
	// the limiter.
	PerMinute int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Compiler = CompilerConfig{
		Bin:       opt("LATEX_BIN"),
		OutputDir: opt("PDF_OUTPUT_DIR"),
		Timeout:   optSeconds("LATEX_TIMEOUT_SECONDS", 30*time.Second),
	}
	if cfg.Compiler.Bin == "" {
		cfg.Compiler.Bin = "pdflatex"
	}
	if cfg.Compiler.OutputDir == "" {
		cfg.Compiler.OutputDir = "generated_pdfs"
	}

	cfg.R2 = R2Config{
		AccountID:       req("R2_ACCOUNT_ID"),
		AccessKeyID:     req("R2_ACCESS_KEY_ID"),
		SecretAccessKey: req("R2_SECRET_ACCESS_KEY"),
		Bucket:          req("R2_BUCKET_NAME"),
		PublicURL:       req("R2_PUBLIC_URL"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		ConnectTimeout: optSeconds("DB_CONNECT_TIMEOUT_SECONDS", 0),
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:   int32(optInt("DB_POOL_MIN_CONNS", 0)),
	}

	cfg.Auth = AuthConfig{
		JWTSecret: opt("AUTH_JWT_SECRET"),
	}

	cfg.RateLimit = RateLimitConfig{
		PerMinute: optInt("RATE_LIMIT_PER_MINUTE", 0),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// Enabled reports whether a history database was configured; the audit trail
// is optional infrastructure.
func (c DatabaseConfig) Enabled() bool {
	return strings.TrimSpace(c.DBHost) != ""
}

func optInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func optSeconds(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
