package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment names accepted in ENV.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Config holds application configuration
type Config struct {
	Env string

	// Server
	Port               string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration

	// Database
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSSLMode            string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBSlowQueryThreshold time.Duration
	RunMigrations        bool

	// AllowDestructiveOps enables delete-all style maintenance operations.
	// It is read once here and never re-derived from ENV elsewhere.
	AllowDestructiveOps bool

	// Tracing
	OTelEnabled     bool
	OTelEndpoint    string
	OTelServiceName string
}

// requiredInProduction lists the variables that have no safe default in production.
var requiredInProduction = []string{"DB_HOST", "DB_NAME", "DB_USER", "DB_PASSWORD"}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	env := getEnv("ENV", EnvDevelopment)
	switch env {
	case EnvDevelopment, EnvTest, EnvProduction:
	default:
		log.Printf("Warning: ENV is set to '%s', expected one of: development, test, production\n", env)
	}

	if env == EnvProduction {
		var missing []string
		for _, key := range requiredInProduction {
			if os.Getenv(key) == "" {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("production database configuration incomplete, missing environment variables: %s",
				strings.Join(missing, ", "))
		}
		if os.Getenv("DB_PORT") == "" {
			log.Println("Warning: DB_PORT not set, using default port 5432 in production")
		}
	}

	dbName := getEnv("DB_NAME", "private_markets")
	if env == EnvTest {
		dbName = getEnv("TEST_DB_NAME", "private_markets_test")
	}

	config := &Config{
		Env: env,

		// Server
		Port:               getEnv("PORT", "3000"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		// Database
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnv("DB_PORT", "5432"),
		DBUser:               getEnv("DB_USER", "postgres"),
		DBPassword:           getEnv("DB_PASSWORD", "postgres"),
		DBName:               dbName,
		DBSSLMode:            getEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 10),
		DBSlowQueryThreshold: getEnvDuration("DB_SLOW_QUERY_THRESHOLD", 5*time.Second),
		RunMigrations:        getEnvBool("RUN_MIGRATIONS", true),

		AllowDestructiveOps: getEnvBool("ALLOW_DESTRUCTIVE_OPS", false),

		// Tracing
		OTelEnabled:     getEnvBool("OTEL_ENABLED", false),
		OTelEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTelServiceName: getEnv("OTEL_SERVICE_NAME", "private-markets-api"),
	}

	if config.AllowDestructiveOps && env == EnvProduction {
		return nil, fmt.Errorf("ALLOW_DESTRUCTIVE_OPS cannot be enabled in production")
	}

	return config, nil
}

// IsProduction reports whether the service runs against production data.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	raw := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	switch raw {
	case "":
		return defaultValue
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	log.Printf("Warning: invalid %s value '%s', falling back to %v\n", key, raw, defaultValue)
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
