// Package config provides centralized default values for PageMint
package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		if err := godotenv.Load(); err == nil {
			log.Println("Loading configuration overrides from .env file...")
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Database
	DBPath                   string
	TursoDatabaseURL         string
	TursoAuthToken           string
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeMinutes int
	DBConnMaxIdleMinutes     int

	// Auth
	JWTSecret       string
	JWTExpiryHours  int
	BcryptCost      int
	AllowSignup     bool
	AdminEmail      string
	AdminPassword   string
	SessionTokenTTL time.Duration

	// Commerce defaults
	DefaultCurrency string

	// Cache
	FragmentCacheTTL     time.Duration
	CacheCleanupInterval time.Duration

	// Media
	MediaDirectory   string
	ThumbnailWidths  []int
	WebPQuality      float32
	MaxUploadBytes   int64
	PlaceholderImage string

	// Email
	ResendAPIKey     string
	OrderEmailFrom   string
	OrderEmailEnable bool

	// Preview
	PreviewWriteTimeout   time.Duration
	PreviewPingInterval   time.Duration
	PreviewMaxConnections int

	// Observability
	LogDirectory       string
	LogJSONFormat      bool
	SlowQueryThreshold time.Duration
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Database
	DBPath = getEnvString("DB_PATH", "pagemint.db")
	TursoDatabaseURL = getEnvString("TURSO_DATABASE_URL", "")
	TursoAuthToken = getEnvString("TURSO_AUTH_TOKEN", "")
	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 3)
	DBConnMaxLifetimeMinutes = getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)
	DBConnMaxIdleMinutes = getEnvInt("DB_CONN_MAX_IDLE_MINUTES", 3)

	// Auth
	JWTSecret = getEnvString("JWT_SECRET", "")
	JWTExpiryHours = getEnvInt("JWT_EXPIRY_HOURS", 72)
	BcryptCost = getEnvInt("BCRYPT_COST", 10)
	AllowSignup = getEnvBool("ALLOW_SIGNUP", true)
	AdminEmail = getEnvString("ADMIN_EMAIL", "")
	AdminPassword = getEnvString("ADMIN_PASSWORD", "")
	SessionTokenTTL = getEnvDuration("SESSION_TOKEN_TTL", 72*time.Hour)

	// Commerce defaults
	DefaultCurrency = getEnvString("DEFAULT_CURRENCY", "USD")

	// Cache
	FragmentCacheTTL = time.Duration(getEnvInt("FRAGMENT_CACHE_TTL_MINUTES", 60)) * time.Minute
	CacheCleanupInterval = time.Duration(getEnvInt("CACHE_CLEANUP_INTERVAL_MINUTES", 30)) * time.Minute

	// Media
	MediaDirectory = getEnvString("MEDIA_DIRECTORY", "media")
	ThumbnailWidths = []int{160, 320, 640}
	WebPQuality = float32(getEnvInt("WEBP_QUALITY", 82))
	MaxUploadBytes = int64(getEnvInt("MAX_UPLOAD_MB", 10)) * 1024 * 1024
	PlaceholderImage = getEnvString("PLACEHOLDER_IMAGE", "/static/placeholder.png")

	// Email
	ResendAPIKey = getEnvString("RESEND_API_KEY", "")
	OrderEmailFrom = getEnvString("ORDER_EMAIL_FROM", "orders@pagemint.local")
	OrderEmailEnable = getEnvBool("ORDER_EMAIL_ENABLE", false)

	// Preview
	PreviewWriteTimeout = getEnvDuration("PREVIEW_WRITE_TIMEOUT", 10*time.Second)
	PreviewPingInterval = getEnvDuration("PREVIEW_PING_INTERVAL", 30*time.Second)
	PreviewMaxConnections = getEnvInt("PREVIEW_MAX_CONNECTIONS", 64)

	// Observability
	LogDirectory = getEnvString("LOG_DIRECTORY", "logs")
	LogJSONFormat = getEnvBool("LOG_JSON_FORMAT", true)
	SlowQueryThreshold = getEnvDuration("SLOW_QUERY_THRESHOLD", 100*time.Millisecond)
}
