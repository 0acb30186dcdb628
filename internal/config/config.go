package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port           string   `yaml:"port"`
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Stats struct {
		TTL string `yaml:"ttl"`
	} `yaml:"stats"`
}

// Load reads YAML config from path. A missing file is not an error: the
// zero config runs the service without a store. Environment variables
// (optionally from a .env file) override the file.
func Load(path string) (Config, error) {
	cfg := Config{}
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = strings.Split(v, ",")
	}
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// Store identifies the relational backend behind a connection string.
type Store int

const (
	StoreNone Store = iota
	StorePostgres
	StoreSQLite
)

func (s Store) String() string {
	switch s {
	case StorePostgres:
		return "postgres"
	case StoreSQLite:
		return "sqlite"
	default:
		return "none"
	}
}

// StoreKind classifies url. Unknown schemes are treated as Postgres DSNs.
func StoreKind(url string) Store {
	url = strings.TrimSpace(url)
	switch {
	case url == "":
		return StoreNone
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return StorePostgres
	case strings.HasPrefix(url, "sqlite://"), strings.HasPrefix(url, "file:"),
		strings.HasSuffix(url, ".db"), url == ":memory:":
		return StoreSQLite
	default:
		return StorePostgres
	}
}

// SQLitePath strips the sqlite:// scheme so the rest can be handed to the driver.
func SQLitePath(url string) string {
	return strings.TrimPrefix(strings.TrimSpace(url), "sqlite://")
}
