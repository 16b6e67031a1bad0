package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	Migration      MigrationConfig
	Recommendation RecommendationConfig
	Cache          CacheConfig
	Security       SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type MigrationConfig struct {
	AutoMigrate    bool
	SeedDatabase   bool
	MigrationsPath string
	SeedsPath      string
}

// RecommendationConfig bounds the work a single recommendation request may trigger
type RecommendationConfig struct {
	MaxGroupSize       int
	CatalogLoadTimeout time.Duration
}

type CacheConfig struct {
	Enabled     bool
	CatalogTTL  time.Duration
	NumCounters int64
	MaxCost     int64
	BufferItems int64
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	MaxBodySize        string
	// TrustedProxies are the CIDRs or IPs whose X-Forwarded-For is believed. Empty means
	// the peer address is the client.
	TrustedProxies []string
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "cards_user"),
			Password:        getEnv("DB_PASSWORD", "cards_password"),
			Name:            getEnv("DB_NAME", "cards_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Migration: MigrationConfig{
			AutoMigrate:    getBoolEnv("AUTO_MIGRATE", false),
			SeedDatabase:   getBoolEnv("SEED_DATABASE", false),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "db/migrations"),
			SeedsPath:      getEnv("SEEDS_PATH", "db/seeds"),
		},
		Recommendation: RecommendationConfig{
			MaxGroupSize:       getIntEnv("RECOMMENDATION_MAX_GROUP_SIZE", 3),
			CatalogLoadTimeout: getDurationEnv("RECOMMENDATION_CATALOG_TIMEOUT", 5*time.Second),
		},
		Cache: CacheConfig{
			Enabled:     getBoolEnv("CATALOG_CACHE_ENABLED", true),
			CatalogTTL:  getDurationEnv("CATALOG_CACHE_TTL", 5*time.Minute),
			NumCounters: getInt64Env("CATALOG_CACHE_NUM_COUNTERS", 1000),
			MaxCost:     getInt64Env("CATALOG_CACHE_MAX_COST", 100),
			BufferItems: getInt64Env("CATALOG_CACHE_BUFFER_ITEMS", 64),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 20),
			MaxBodySize:        getEnv("MAX_BODY_SIZE", "1M"),
			TrustedProxies:     getListEnv("TRUSTED_PROXIES"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate reports settings the server cannot start with
func (c *Config) Validate() error {
	if c.Recommendation.MaxGroupSize < 0 {
		return fmt.Errorf("RECOMMENDATION_MAX_GROUP_SIZE must not be negative, got %d", c.Recommendation.MaxGroupSize)
	}
	if c.Security.RateLimitPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_SECOND must be positive, got %d", c.Security.RateLimitPerSecond)
	}
	if c.Cache.Enabled && (c.Cache.NumCounters <= 0 || c.Cache.MaxCost <= 0) {
		return fmt.Errorf("catalog cache needs positive counters and max cost")
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}

// getListEnv splits a comma separated variable, dropping blank entries
func getListEnv(key string) []string {
	var values []string
	for _, value := range strings.Split(os.Getenv(key), ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}
	return values
}
