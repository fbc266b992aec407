package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/internal/domain/repository"
	"github.com/oksasatya/identity-mongo/internal/infrastructure/mongodb"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// MongoDB
	MongoURI            string
	MongoDatabase       string
	MongoConnectTimeout time.Duration

	// Identity stores
	UserCollection   string // empty means derived from the user type
	RoleCollection   string
	KeyKindName      string // string, uuid, objectid
	UUIDRepresentRaw string // standard, legacy

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// JWT
	JWTAccessSecret string
	AccessTTL       time.Duration

	// Cookies
	CookieDomain string
	CookieSecure bool

	// CORS
	CORSAllowedOrigins string // comma-separated

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool

	// Seed admin account (cmd/seed)
	SeedAdminUserName string
	SeedAdminEmail    string
	SeedAdminPassword string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "identity-mongo"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		MongoURI:            getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:       getenv("MONGO_DATABASE", "identity"),
		MongoConnectTimeout: getdur("MONGO_CONNECT_TIMEOUT", 10*time.Second),

		UserCollection:   getenv("IDENTITY_USER_COLLECTION", ""),
		RoleCollection:   getenv("IDENTITY_ROLE_COLLECTION", ""),
		KeyKindName:      getenv("IDENTITY_KEY_KIND", "string"),
		UUIDRepresentRaw: getenv("IDENTITY_UUID_REPRESENTATION", "standard"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		JWTAccessSecret: getenv("JWT_ACCESS_SECRET", "devaccesssecret"),
		AccessTTL:       getdur("JWT_ACCESS_TTL", time.Hour),

		CookieDomain: getenv("COOKIE_DOMAIN", "localhost"),
		CookieSecure: getbool("COOKIE_SECURE", false),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		// HTTP access log toggle (default false; enable when needed)
		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),

		SeedAdminUserName: getenv("SEED_ADMIN_USERNAME", "admin"),
		SeedAdminEmail:    getenv("SEED_ADMIN_EMAIL", "admin@example.com"),
		SeedAdminPassword: getenv("SEED_ADMIN_PASSWORD", "password123"),
	}
}

// KeyKind returns the configured identity key variant. An empty value leaves
// the variant to registration; any other unknown value is an error.
func (c *Config) KeyKind() (entity.KeyKind, error) {
	raw := strings.ToLower(strings.TrimSpace(c.KeyKindName))
	if raw == "" {
		return entity.KeyUnspecified, nil
	}
	if kind := entity.ParseKeyKind(raw); kind != entity.KeyUnspecified {
		return kind, nil
	}
	return entity.KeyUnspecified, fmt.Errorf("%w: unknown IDENTITY_KEY_KIND %q (want string, uuid or objectid)",
		repository.ErrConfiguration, c.KeyKindName)
}

// UUIDRepresentation returns the configured UUID wire representation.
func (c *Config) UUIDRepresentation() (mongodb.UUIDRepresentation, error) {
	return mongodb.ParseUUIDRepresentation(strings.ToLower(strings.TrimSpace(c.UUIDRepresentRaw)))
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
