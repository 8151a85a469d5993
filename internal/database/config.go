package database

import (
	"fmt"
	"net/url"
	"time"

	"privatemarkets/internal/config"
)

// Config holds database configuration
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	SlowQueryThreshold time.Duration

	// MigrationsPath is a golang-migrate source URL.
	MigrationsPath string

	// AllowDestructive gates ClearAll. It is fixed when the Manager is built.
	AllowDestructive bool
}

// NewConfig derives the database configuration from the application config.
func NewConfig(appConfig *config.Config) *Config {
	return &Config{
		Host:               appConfig.DBHost,
		Port:               appConfig.DBPort,
		User:               appConfig.DBUser,
		Password:           appConfig.DBPassword,
		DBName:             appConfig.DBName,
		SSLMode:            appConfig.DBSSLMode,
		MaxOpenConns:       appConfig.DBMaxOpenConns,
		MaxIdleConns:       appConfig.DBMaxIdleConns,
		ConnMaxLifetime:    time.Hour,
		ConnMaxIdleTime:    30 * time.Minute,
		SlowQueryThreshold: appConfig.DBSlowQueryThreshold,
		MigrationsPath:     "file://migrations",
		AllowDestructive:   appConfig.AllowDestructiveOps,
	}
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL returns the connection string in URL form, as golang-migrate expects.
func (c *Config) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}
