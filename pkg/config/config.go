// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, content, GitHub, and contact settings

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Content contains blog content pipeline configuration
	Content ContentConfig

	// GitHub contains GitHub activity widget configuration
	GitHub GitHubConfig

	// Contact contains contact form configuration
	Contact ContactConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// LogLevel controls logger verbosity (debug/info/warn/error)
	LogLevel string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// ContentConfig holds blog content pipeline configuration
type ContentConfig struct {
	// BaseURL is the content server root serving Markdown and collections
	BaseURL string

	// PostsDir is the directory under BaseURL holding post files
	PostsDir string

	// ManifestName is the post manifest filename
	ManifestName string

	// FallbackFiles is the comma-separated post list used when the
	// manifest cannot be fetched
	FallbackFiles []string

	// DefaultAuthor is applied to posts without an author
	DefaultAuthor string

	// Site metadata for the RSS feed
	SiteTitle       string
	SiteDescription string
	SiteURL         string
}

// GitHubConfig holds GitHub activity widget configuration
type GitHubConfig struct {
	// Username is the GitHub account shown in the widget
	Username string

	// APIBase is the GitHub API root
	APIBase string

	// CacheTTL is the freshness window for cached GitHub responses
	CacheTTL time.Duration

	// KeyPrefix namespaces the cache keys
	KeyPrefix string
}

// ContactConfig holds contact form configuration
type ContactConfig struct {
	// Endpoint receives contact submissions as JSON POSTs
	Endpoint string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:     getEnvOrDefault("PORT", "8000"),
			LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
			},
		},
		Content: ContentConfig{
			BaseURL:         getEnvOrDefault("CONTENT_BASE_URL", ""),
			PostsDir:        getEnvOrDefault("CONTENT_POSTS_DIR", "blog"),
			ManifestName:    getEnvOrDefault("CONTENT_MANIFEST", "index.json"),
			FallbackFiles:   getEnvAsListOrDefault("CONTENT_FALLBACK_FILES", nil),
			DefaultAuthor:   getEnvOrDefault("CONTENT_DEFAULT_AUTHOR", ""),
			SiteTitle:       getEnvOrDefault("SITE_TITLE", "AppaHouse"),
			SiteDescription: getEnvOrDefault("SITE_DESCRIPTION", ""),
			SiteURL:         getEnvOrDefault("SITE_URL", ""),
		},
		GitHub: GitHubConfig{
			Username:  getEnvOrDefault("GITHUB_USERNAME", ""),
			APIBase:   getEnvOrDefault("GITHUB_API_BASE", "https://api.github.com"),
			CacheTTL:  getEnvAsDurationOrDefault("GITHUB_CACHE_TTL", 30*time.Minute),
			KeyPrefix: getEnvOrDefault("GITHUB_CACHE_KEY_PREFIX", ""),
		},
		Contact: ContactConfig{
			Endpoint: getEnvOrDefault("CONTACT_ENDPOINT", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault returns the environment variable as a
// duration ("30m", "1h") or a default
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma-separated environment variable,
// trimming whitespace around each element
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis', or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Content.BaseURL == "" {
		return errors.New("content base URL cannot be empty")
	}

	if c.GitHub.Username == "" {
		return errors.New("github username cannot be empty")
	}

	if c.GitHub.CacheTTL <= 0 {
		return errors.New("github cache TTL must be positive")
	}

	return nil
}
