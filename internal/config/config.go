// Package config provides configuration management for the village-api service.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Supported database drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the village-api service.
type Config struct {
	// Server settings
	Port string

	// Database settings
	DBDriver       string
	DatabaseURL    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	MaxOpenConns   int
	MaxIdleConns   int
	MigrationsPath string

	// Logging
	LogLevel  string
	LogFormat string

	// HTTP / GraphQL
	CORSAllowedOrigins []string
	MaxParallelism     int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	driver := strings.ToLower(getEnv("DB_DRIVER", DriverMySQL))
	defaultPort := "3306"
	if driver == DriverPostgres {
		defaultPort = "5432"
	}

	return &Config{
		Port: getEnv("VILLAGE_API_PORT", "4000"),

		DBDriver:       driver,
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", defaultPort),
		DBUser:         getEnv("DB_USER", "root"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "VillageDB"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:   getEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:   getEnvInt("DB_MAX_IDLE_CONNS", 5),
		MigrationsPath: getEnv("VILLAGE_MIGRATIONS_PATH", "./migrations"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		MaxParallelism:     getEnvInt("GRAPHQL_MAX_PARALLELISM", 10),
	}
}

// Validate reports configuration that cannot produce a working server.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want %q or %q)", c.DBDriver, DriverMySQL, DriverPostgres)
	}
	if c.Port == "" {
		return fmt.Errorf("VILLAGE_API_PORT must not be empty")
	}
	if c.DatabaseURL == "" && c.DBName == "" {
		return fmt.Errorf("either DATABASE_URL or DB_NAME is required")
	}
	return nil
}

// DSN returns the driver-specific data source name. DATABASE_URL wins when set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	if c.DBDriver == DriverPostgres {
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(c.DBUser, c.DBPassword),
			Host:   net.JoinHostPort(c.DBHost, c.DBPort),
			Path:   "/" + c.DBName,
		}
		q := u.Query()
		q.Set("sslmode", c.DBSSLMode)
		u.RawQuery = q.Encode()
		return u.String()
	}

	mc := mysql.NewConfig()
	mc.User = c.DBUser
	mc.Passwd = c.DBPassword
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.DBHost, c.DBPort)
	mc.DBName = c.DBName
	mc.ParseTime = true
	mc.Timeout = 10 * time.Second
	return mc.FormatDSN()
}

// MigrationsURL returns the golang-migrate source URL for the configured driver.
func (c *Config) MigrationsURL() string {
	return "file://" + strings.TrimSuffix(c.MigrationsPath, "/") + "/" + c.DBDriver
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
