package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress   string        `yaml:"server_address"`
	Environment     string        `yaml:"environment"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// Portal authentication
	PortalPassword string        `yaml:"portal_password"`
	SessionSecret  string        `yaml:"session_secret"`
	SessionTTL     time.Duration `yaml:"session_ttl"`

	// Notification relay
	NotifyEndpoint string `yaml:"notify_endpoint"`
	NotifyToken    string `yaml:"notify_token"`

	// Rate limits, per client address per minute
	GenerateRateLimit int `yaml:"generate_rate_limit"`
	NotifyRateLimit   int `yaml:"notify_rate_limit"`
	LoginRateLimit    int `yaml:"login_rate_limit"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Feature flags
	EnableMetrics bool     `yaml:"enable_metrics"`
	EnableCORS    bool     `yaml:"enable_cors"`
	CORSOrigins   []string `yaml:"cors_origins"`
}

// LoadConfig loads configuration from environment variables, then applies the
// optional YAML overlay named by NB_CONFIG_FILE on top.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:   getEnv("SERVER_ADDRESS", ":8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),

		PortalPassword: getEnv("NB_PORTAL_PASSWORD", ""),
		SessionSecret:  getEnv("NB_SESSION_SECRET", ""),
		SessionTTL:     getEnvDuration("NB_SESSION_TTL", 7*24*time.Hour),

		NotifyEndpoint: getEnv("NB_NOTIFY_ENDPOINT", ""),
		NotifyToken:    getEnv("NB_NOTIFY_TOKEN", ""),

		GenerateRateLimit: getEnvInt("NB_GENERATE_RATE_LIMIT", 60),
		NotifyRateLimit:   getEnvInt("NB_NOTIFY_RATE_LIMIT", 20),
		LoginRateLimit:    getEnvInt("NB_LOGIN_RATE_LIMIT", 10),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
		CORSOrigins:   getEnvList("NB_CORS_ORIGINS", []string{"*"}),
	}

	if path := os.Getenv("NB_CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig for backwards compatibility
func Load() (*Config, error) {
	return LoadConfig()
}

// applyFile overlays values from a YAML file. Zero values in the file leave
// the environment-derived value in place.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return err
	}

	if overlay.ServerAddress != "" {
		c.ServerAddress = overlay.ServerAddress
	}
	if overlay.Environment != "" {
		c.Environment = overlay.Environment
	}
	if overlay.ShutdownTimeout != 0 {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.PortalPassword != "" {
		c.PortalPassword = overlay.PortalPassword
	}
	if overlay.SessionSecret != "" {
		c.SessionSecret = overlay.SessionSecret
	}
	if overlay.SessionTTL != 0 {
		c.SessionTTL = overlay.SessionTTL
	}
	if overlay.NotifyEndpoint != "" {
		c.NotifyEndpoint = overlay.NotifyEndpoint
	}
	if overlay.NotifyToken != "" {
		c.NotifyToken = overlay.NotifyToken
	}
	if overlay.GenerateRateLimit != 0 {
		c.GenerateRateLimit = overlay.GenerateRateLimit
	}
	if overlay.NotifyRateLimit != 0 {
		c.NotifyRateLimit = overlay.NotifyRateLimit
	}
	if overlay.LoginRateLimit != 0 {
		c.LoginRateLimit = overlay.LoginRateLimit
	}
	if overlay.LogLevel != "" {
		c.LogLevel = overlay.LogLevel
	}
	if len(overlay.CORSOrigins) > 0 {
		c.CORSOrigins = overlay.CORSOrigins
	}

	return nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.SessionSecret == "" {
			return fmt.Errorf("NB_SESSION_SECRET is required in production")
		}
		if c.PortalPassword == "" {
			return fmt.Errorf("NB_PORTAL_PASSWORD is required in production")
		}
	}
	if c.GenerateRateLimit <= 0 || c.NotifyRateLimit <= 0 || c.LoginRateLimit <= 0 {
		return fmt.Errorf("rate limits must be positive")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvList gets a comma-separated environment variable with a default value
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
