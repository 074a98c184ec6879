package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Mongo      MongoConfig
	Vault      VaultConfig
	Engagement EngagementConfig
	Trending   TrendingConfig
	Logging    LoggingConfig
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port         string
	TrendingPort string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig contains MySQL connection configuration.
type DatabaseConfig struct {
	Host         string
	Port         string
	Username     string
	Password     string
	DatabaseName string
	MaxOpenConns int
	MaxIdleConns int
}

// MongoConfig contains the event log store configuration. RetentionDays
// bounds the rolling event window; older day partitions are dropped by the
// retention sweep without touching the pre-folded counters.
type MongoConfig struct {
	URI           string
	Database      string
	RetentionDays int
}

// VaultConfig carries the key-derivation inputs handed to the service by its
// execution environment. The derived key is never persisted; when both values
// are empty the vault operates without a key and every call fails with
// KeyUnavailable.
type VaultConfig struct {
	Passphrase string
	Salt       string
}

type EngagementConfig struct {
	MaxScoreRetries int
}

type TrendingConfig struct {
	Lookback        time.Duration
	RefreshInterval time.Duration
	Cap             int
	SnapshotDir     string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables, applying defaults for
// anything unset. cmd mains call godotenv.Load first.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         envOr("SERVER_PORT", "8080"),
			TrendingPort: envOr("TRENDING_PORT", "8081"),
			ReadTimeout:  envDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: envDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:         envOr("MYSQL_HOST", "localhost"),
			Port:         envOr("MYSQL_PORT", "3306"),
			Username:     envOr("MYSQL_USER", "root"),
			Password:     os.Getenv("MYSQL_PASSWORD"),
			DatabaseName: envOr("MYSQL_DATABASE", "gocircle"),
			MaxOpenConns: envInt("MYSQL_MAX_OPEN_CONNS", 50),
			MaxIdleConns: envInt("MYSQL_MAX_IDLE_CONNS", 10),
		},
		Mongo: MongoConfig{
			URI:           envOr("MONGO_URI", "mongodb://localhost:27017"),
			Database:      envOr("MONGO_DATABASE", "gocircle_events"),
			RetentionDays: envInt("EVENT_RETENTION_DAYS", 30),
		},
		Vault: VaultConfig{
			Passphrase: os.Getenv("VAULT_PASSPHRASE"),
			Salt:       os.Getenv("VAULT_SALT"),
		},
		Engagement: EngagementConfig{
			MaxScoreRetries: envInt("ENGAGEMENT_MAX_RETRIES", 3),
		},
		Trending: TrendingConfig{
			Lookback:        envDuration("TRENDING_LOOKBACK", 7*24*time.Hour),
			RefreshInterval: envDuration("TRENDING_REFRESH_INTERVAL", 15*time.Minute),
			Cap:             envInt("TRENDING_CAP", 1000),
			SnapshotDir:     envOr("TRENDING_SNAPSHOT_DIR", "/var/lib/gocircle/trending"),
		},
		Logging: LoggingConfig{
			Level:  envOr("LOG_LEVEL", "info"),
			Format: envOr("LOG_FORMAT", "text"),
		},
	}
}

// DSN builds the MySQL connection string.
func (cfg *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
