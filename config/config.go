package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds the application configuration
type Config struct {
	Port          string        // Service port
	ERPBaseURL    string        // ERP host base URL
	ERPClient     string        // sap-client query parameter
	ERPUsername   string        // Fixed service user for transport auth
	ERPPassword   string        // Fixed service password
	RemoteTimeout time.Duration // Timeout per outbound call
	SessionTTL    time.Duration // Session lifetime
	SessionStore  string        // "memory" or "sqlite"
	SessionDBPath string        // SQLite path when SessionStore is "sqlite"
	CORSOrigin    string        // Allowed browser origin (credentialed)
	CookieName    string        // Session cookie name
	CookieSecure  bool          // Secure flag on the session cookie
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	config := &Config{
		Port:          getEnv("PORT", "3000"),
		ERPBaseURL:    getEnv("ERP_BASE_URL", "http://AZKTLDS5CP.kcloud.com:8000"),
		ERPClient:     getEnv("ERP_CLIENT", "100"),
		ERPUsername:   getEnv("ERP_USERNAME", ""),
		ERPPassword:   getEnv("ERP_PASSWORD", ""),
		RemoteTimeout: 30 * time.Second,
		SessionTTL:    24 * time.Hour,
		SessionStore:  getEnv("SESSION_STORE", "memory"),
		SessionDBPath: getEnv("SESSION_DB_PATH", "sessions.db"),
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://localhost:4200"),
		CookieName:    getEnv("SESSION_COOKIE_NAME", "portal_session"),
		CookieSecure:  getEnv("SESSION_COOKIE_SECURE", "false") == "true",
	}

	// Parse REMOTE_TIMEOUT if provided
	if timeoutStr := os.Getenv("REMOTE_TIMEOUT"); timeoutStr != "" {
		duration, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REMOTE_TIMEOUT format: %w", err)
		}
		config.RemoteTimeout = duration
	}

	// Parse SESSION_TTL if provided
	if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
		duration, err := time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL format: %w", err)
		}
		config.SessionTTL = duration
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	if c.ERPBaseURL == "" {
		return fmt.Errorf("ERP_BASE_URL cannot be empty")
	}

	if c.ERPUsername == "" {
		return fmt.Errorf("ERP_USERNAME is required")
	}

	if c.ERPPassword == "" {
		return fmt.Errorf("ERP_PASSWORD is required")
	}

	if c.RemoteTimeout <= 0 {
		return fmt.Errorf("REMOTE_TIMEOUT must be positive")
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	if c.SessionStore != "memory" && c.SessionStore != "sqlite" {
		return fmt.Errorf("SESSION_STORE must be \"memory\" or \"sqlite\"")
	}

	return nil
}

// getEnv retrieves an environment variable or returns a fallback value
func getEnv(key, fallback string) string {
	// Check for _FILE suffix
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
