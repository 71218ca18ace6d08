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

// Config holds application configuration
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Groq   GroqConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// MongoConfig holds MongoDB configuration. An empty URI puts the
// application into degraded mode: saves are skipped, reads return empty.
type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// GroqConfig holds Groq API configuration
type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGODB_URI", ""),
			Database:       getEnv("MONGODB_DATABASE", "briefly"),
			ConnectTimeout: getEnvAsDuration("MONGODB_CONNECT_TIMEOUT", "10s"),
		},
		Groq: GroqConfig{
			APIKey:  getEnv("GROQ_API_KEY", ""),
			BaseURL: getEnv("GROQ_API_URL", "https://api.groq.com"),
			Model:   getEnv("GROQ_MODEL", "llama3-70b-8192"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration. A missing MONGODB_URI is not an
// error: the service runs without persistence.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.Groq.BaseURL == "" {
		return fmt.Errorf("GROQ_API_URL must not be empty")
	}
	return nil
}

// MongoConfigured reports whether a MongoDB connection string is present
func (c *Config) MongoConfigured() bool {
	return c.Mongo.URI != ""
}

// GetServerAddr returns the host:port the HTTP server listens on
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
