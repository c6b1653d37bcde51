package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default values for optional settings.
const (
	DefaultPort            = "8080"
	DefaultDBDriver        = DriverNone
	DefaultDBPath          = "data/app.db"
	DefaultGeocodeCacheTTL = 24 * time.Hour
	DefaultMaxQuantityTons = 100_000.0
	DefaultCORSOrigins     = "http://localhost:5173,http://localhost:3000"
)

// Supported catalog storage backends.
const (
	DriverNone   = "none"
	DriverPgx    = "pgx"
	DriverSQLite = "sqlite"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Port string

	// Catalog storage: "none" serves the built-in catalog from memory.
	DBDriver    string
	DatabaseURL string
	DBPath      string

	// Optional YAML seller catalog; overrides the built-in one when set.
	SellersPath string
	// Seed for catalog jitter; nil means time-seeded.
	CatalogSeed *uint64

	// Optional Redis address for the shared cache in front of the stored
	// address book; needs a database.
	RedisAddr       string
	GeocodeCacheTTL time.Duration

	MaxQuantityTons    float64
	CORSAllowedOrigins []string
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads an optional .env file, then builds and validates the config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
	return FromEnv()
}

// FromEnv builds the config from the current environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        Get("PORT", ""),
		DBDriver:    strings.ToLower(strings.TrimSpace(Get("DB_DRIVER", ""))),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DBPath:      Get("DB_PATH", ""),
		SellersPath: strings.TrimSpace(os.Getenv("SELLERS_PATH")),
		RedisAddr:   strings.TrimSpace(os.Getenv("REDIS_ADDR")),
	}

	if v := strings.TrimSpace(os.Getenv("CATALOG_SEED")); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config: CATALOG_SEED: %w", err)
		}
		cfg.CatalogSeed = &seed
	}

	if v := strings.TrimSpace(os.Getenv("GEOCODE_CACHE_TTL")); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config: GEOCODE_CACHE_TTL: %w", err)
		}
		cfg.GeocodeCacheTTL = ttl
	}

	if v := strings.TrimSpace(os.Getenv("MAX_QUANTITY_TONS")); v != "" {
		maxQty, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("config: MAX_QUANTITY_TONS: %w", err)
		}
		cfg.MaxQuantityTons = maxQty
	}

	cfg.CORSAllowedOrigins = splitList(Get("CORS_ALLOWED_ORIGINS", DefaultCORSOrigins))

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = DefaultPort
	}
	if c.DBDriver == "" {
		c.DBDriver = DefaultDBDriver
	}
	if c.DBPath == "" {
		c.DBPath = DefaultDBPath
	}
	if c.GeocodeCacheTTL == 0 {
		c.GeocodeCacheTTL = DefaultGeocodeCacheTTL
	}
	if c.MaxQuantityTons == 0 {
		c.MaxQuantityTons = DefaultMaxQuantityTons
	}
}

// Validate checks that required settings are present and values are usable.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverNone, DriverSQLite:
	case DriverPgx:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when DB_DRIVER=pgx")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be one of none, pgx, sqlite; got %q", c.DBDriver)
	}

	if c.RedisAddr != "" && c.DBDriver == DriverNone {
		return errors.New("REDIS_ADDR caches the stored address book and requires DB_DRIVER pgx or sqlite")
	}

	if c.MaxQuantityTons <= 0 {
		return fmt.Errorf("MAX_QUANTITY_TONS must be > 0, got %v", c.MaxQuantityTons)
	}

	if c.GeocodeCacheTTL < 0 {
		return fmt.Errorf("GEOCODE_CACHE_TTL must be >= 0, got %s", c.GeocodeCacheTTL)
	}

	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %q", c.Port)
	}

	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
