package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server ServerConfig
	Neo4j  Neo4jConfig
	Auth   AuthConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port             string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	PublicDir        string
	CORSAllowOrigins string
}

type Neo4jConfig struct {
	URI                string
	Username           string
	Password           string
	Database           string
	MaxPoolSize        int
	AcquisitionTimeout time.Duration
	VerifyConnectivity bool
}

type AuthConfig struct {
	JWTSecret  string
	Issuer     string
	Expiry     time.Duration
	SaltRounds int
}

type LogConfig struct {
	Env   string
	Level string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:             getEnvOrDefault("APP_PORT", "3000"),
			ReadTimeout:      getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:     getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
			PublicDir:        getEnvOrDefault("PUBLIC_DIR", "public"),
			CORSAllowOrigins: getEnvOrDefault("CORS_ALLOW_ORIGINS", "*"),
		},
		Neo4j: Neo4jConfig{
			URI:                getEnvOrDefault("NEO4J_URI", "neo4j://localhost:7687"),
			Username:           getEnvOrDefault("NEO4J_USERNAME", "neo4j"),
			Password:           os.Getenv("NEO4J_PASSWORD"),
			Database:           os.Getenv("NEO4J_DATABASE"),
			MaxPoolSize:        getIntOrDefault("NEO4J_MAX_POOL_SIZE", 100),
			AcquisitionTimeout: getDurationOrDefault("NEO4J_ACQUISITION_TIMEOUT", 60*time.Second),
			VerifyConnectivity: getBoolOrDefault("NEO4J_VERIFY_CONNECTIVITY", true),
		},
		Auth: AuthConfig{
			JWTSecret:  os.Getenv("JWT_SECRET"),
			Issuer:     getEnvOrDefault("JWT_ISSUER", "auth0"),
			Expiry:     getDurationOrDefault("JWT_EXPIRY", 24*time.Hour),
			SaltRounds: getIntOrDefault("SALT_ROUNDS", 12),
		},
		Log: LogConfig{
			Env:   getEnvOrDefault("GO_ENV", "dev"),
			Level: os.Getenv("LOG_LEVEL"),
		},
	}
}

func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Neo4j.URI == "" {
		return fmt.Errorf("NEO4J_URI is required")
	}
	// bcrypt.MinCost and bcrypt.MaxCost
	if c.Auth.SaltRounds < 4 || c.Auth.SaltRounds > 31 {
		return fmt.Errorf("SALT_ROUNDS must be between 4 and 31, got %d", c.Auth.SaltRounds)
	}
	return nil
}

// Address returns the listen address for the HTTP server
func (c *Config) Address() string {
	return ":" + c.Server.Port
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
