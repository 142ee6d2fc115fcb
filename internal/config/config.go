// Package config manages the client configuration stored at ~/.troc/config.json.
// Environment variables (optionally loaded from a .env file) override the
// file-backed values, so the token never has to live on disk if the user
// prefers not to.
package config

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"

	trocerrors "github.com/troc-app/troc/internal/errors"
)

const (
	// DefaultAPIURL is the backend used when nothing else is configured.
	DefaultAPIURL = "https://api.troc.app/api"

	// DefaultPollSeconds is how often the conversation list is refreshed in
	// the background. Zero disables polling.
	DefaultPollSeconds = 30

	envAPIURL = "TROC_API_URL"
	envToken  = "TROC_TOKEN"
)

// Config holds the client configuration
type Config struct {
	APIURL               string `json:"api_url,omitempty"`
	Token                string `json:"token,omitempty"`
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notifications on new activity
	PollSeconds          int    `json:"poll_seconds,omitempty"`          // Conversation list refresh interval

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".troc"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist.
// A .env file in the working directory and process environment variables
// override the persisted API URL and token.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. Used by tests.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		filePath: path,
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, trocerrors.ConfigLoadFailed(path, err)
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, trocerrors.ConfigLoadFailed(path, err)
		}
	}

	cfg.applyDefaults()

	// .env is optional; a missing file means the process environment alone
	godotenv.Load()
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills zero values after unmarshaling.
// Not thread-safe; only called during single-threaded initialization.
func (c *Config) applyDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.PollSeconds == 0 {
		c.PollSeconds = DefaultPollSeconds
	}
}

// applyEnvOverrides lets TROC_API_URL and TROC_TOKEN take precedence over
// file values. Not thread-safe; only called during initialization.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(envAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(envToken); v != "" {
		c.Token = v
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, err := url.ParseRequestURI(c.APIURL); err != nil {
		return trocerrors.ConfigInvalid("api_url is not a valid URL: " + c.APIURL)
	}
	if c.PollSeconds < 0 {
		return trocerrors.ConfigInvalid("poll_seconds must not be negative")
	}
	return nil
}

// Save writes the config back to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return trocerrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return trocerrors.ConfigSaveFailed(c.filePath, err)
	}

	// 0600: the file may contain the bearer token
	if err := os.WriteFile(c.filePath, data, 0600); err != nil {
		return trocerrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetAPIURL returns the backend base URL
func (c *Config) GetAPIURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.APIURL
}

// SetAPIURL sets the backend base URL
func (c *Config) SetAPIURL(apiURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.APIURL = apiURL
}

// GetToken returns the bearer token
func (c *Config) GetToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Token
}

// SetToken sets the bearer token
func (c *Config) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Token = token
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled toggles desktop notifications
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetPollInterval returns the conversation refresh interval.
// Zero means polling is disabled.
func (c *Config) GetPollInterval() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.PollSeconds < 0 {
		return 0
	}
	return time.Duration(c.PollSeconds) * time.Second
}

// CheckToken verifies that a token is present and, when it is a parseable JWT
// with an expiry claim, that it has not expired. Opaque tokens pass as long as
// they are non-empty; the backend remains the authority either way.
func (c *Config) CheckToken(now time.Time) error {
	token := c.GetToken()
	if token == "" {
		return trocerrors.TokenMissing()
	}
	exp, ok := TokenExpiry(token)
	if ok && now.After(exp) {
		return trocerrors.TokenExpired()
	}
	return nil
}
