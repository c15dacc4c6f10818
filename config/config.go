// Package config provides configuration management for the flower service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server  ServerConfig
	Shop    ShopConfig
	Catalog CatalogConfig
	Storage StorageConfig
	Session SessionConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// ShopConfig holds storefront configuration.
type ShopConfig struct {
	// WhatsAppPhone is the order destination number in international
	// format without the plus sign.
	WhatsAppPhone string
	// CountryPrefix is prepended to customer phone numbers in the order
	// message.
	CountryPrefix string
}

// CatalogConfig holds catalog source configuration.
type CatalogConfig struct {
	// FilePath points to a JSON catalog file; empty uses the built-in
	// catalog.
	FilePath string
}

// StorageConfig holds cart snapshot storage configuration.
type StorageConfig struct {
	// Backend selects the snapshot store: "file", "mongo", or "redis".
	Backend string
	FileDir string
	// CartTTL is how long abandoned snapshots are retained (mongo and
	// redis backends).
	CartTTL       time.Duration
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// SessionConfig holds cart session token configuration.
type SessionConfig struct {
	Secret   string
	TTL      time.Duration
	Required bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Shop: ShopConfig{
			WhatsAppPhone: getEnv("SHOP_WHATSAPP_PHONE", "5351234567"),
			CountryPrefix: getEnv("SHOP_COUNTRY_PREFIX", "+53"),
		},
		Catalog: CatalogConfig{
			FilePath: getEnv("CATALOG_FILE", ""),
		},
		Storage: StorageConfig{
			Backend:       getEnv("STORAGE_BACKEND", "file"),
			FileDir:       getEnv("STORAGE_FILE_DIR", "./data/carts"),
			CartTTL:       getEnvDuration("STORAGE_CART_TTL", 30*24*time.Hour),
			MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			MongoDatabase: getEnv("MONGODB_DATABASE", "flower_service"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			Secret:   getEnv("SESSION_SECRET", "change-me-in-production"),
			TTL:      getEnvDuration("SESSION_TTL", 30*24*time.Hour),
			Required: getEnvBool("SESSION_REQUIRED", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
