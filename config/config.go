package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"backoffice/constants"

	"github.com/joho/godotenv"
)

// Storage backends.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Scope lock modes.
const (
	LocksNone   = "none"
	LocksMemory = "memory"
	LocksRedis  = "redis"
)

type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	User     string
	Password string
}

// Config is everything the server reads from its environment.
type Config struct {
	Env             string
	Port            string
	Store           string
	AutoMigrate     bool
	DB              DBConfig
	Redis           RedisConfig
	ScopeLocks      string
	LockTTL         time.Duration
	LogLevel        string
	PageSizeDefault int
	PageSizeMax     int
	CORSOrigins     []string
}

// IsProd reports whether the server runs with production settings.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// LoadEnv reads .env into the process environment. A missing file is not an
// error; the process environment is used as is.
func LoadEnv() error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Load loads .env and builds a Config from the environment.
func Load() (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Env:         strings.ToLower(GetEnv("ENV", "dev")),
		Port:        GetEnv("PORT", "8083"),
		Store:       strings.ToLower(GetEnv("STORE", StorePostgres)),
		ScopeLocks:  strings.ToLower(GetEnv("SCOPE_LOCKS", LocksMemory)),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			User:     os.Getenv("REDIS_USER"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
	}

	switch cfg.Env {
	case "dev", "qc", "prod":
	default:
		return nil, fmt.Errorf("unknown environment: %s", cfg.Env)
	}
	switch cfg.Store {
	case StorePostgres, StoreMemory:
	default:
		return nil, fmt.Errorf("STORE must be %s or %s, got %q", StorePostgres, StoreMemory, cfg.Store)
	}
	switch cfg.ScopeLocks {
	case LocksNone, LocksMemory, LocksRedis:
	default:
		return nil, fmt.Errorf("SCOPE_LOCKS must be none, memory or redis, got %q", cfg.ScopeLocks)
	}
	if cfg.ScopeLocks == LocksRedis && cfg.Redis.Addr == "" {
		return nil, fmt.Errorf("SCOPE_LOCKS=redis requires REDIS_ADDR")
	}

	var err error
	if cfg.AutoMigrate, err = getBool("DB_AUTO_MIGRATE", false); err != nil {
		return nil, err
	}
	if cfg.LockTTL, err = getDuration("LOCK_TTL", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.PageSizeDefault, err = getInt("PAGE_SIZE_DEFAULT", constants.DefaultPageSize); err != nil {
		return nil, err
	}
	if cfg.PageSizeMax, err = getInt("PAGE_SIZE_MAX", constants.MaxPageSize); err != nil {
		return nil, err
	}
	if cfg.PageSizeDefault <= 0 || cfg.PageSizeMax <= 0 || cfg.PageSizeDefault > cfg.PageSizeMax {
		return nil, fmt.Errorf("page sizes must satisfy 0 < PAGE_SIZE_DEFAULT <= PAGE_SIZE_MAX")
	}

	cfg.DB = dbConfigByEnv(cfg.Env)
	return cfg, nil
}

// GetEnv returns the variable or def when it is unset or blank.
func GetEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
