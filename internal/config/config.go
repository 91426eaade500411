// ABOUTME: Pulse configuration and auth session management.
// ABOUTME: TOML config at the XDG path; secrets come from the environment.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/pulsetrack/pulse/internal/models"
	"github.com/pulsetrack/pulse/internal/storage"
)

// Config stores pulse configuration and the signed-in session.
type Config struct {
	// DatabaseURL selects the store: a libsql:// or https:// URL for the
	// hosted store, or a local file path. Defaults to the standard XDG
	// data directory. Supports ~ expansion for home directory.
	DatabaseURL string `toml:"database_url,omitempty"`

	// CacheDir is the local entity cache directory. Defaults to the
	// standard XDG cache directory.
	CacheDir string `toml:"cache_dir,omitempty"`

	// BridgeURL is the device health bridge endpoint. Empty means no
	// bridge is configured and health features report disconnected.
	BridgeURL string `toml:"bridge_url,omitempty"`

	// FunctionsURL is the base URL used to invoke the function server
	// remotely instead of answering in-process.
	FunctionsURL string `toml:"functions_url,omitempty"`

	Session Session `toml:"session"`
}

// Session is the persisted sign-in state. An empty UserID means the
// session is anonymous.
type Session struct {
	UserID string `toml:"user_id,omitempty"`
	Email  string `toml:"email,omitempty"`
	Token  string `toml:"token,omitempty"`
}

// User returns the signed-in user, or nil for anonymous sessions.
func (s Session) User() *models.User {
	if s.UserID == "" {
		return nil
	}
	id, err := uuid.Parse(s.UserID)
	if err != nil {
		return nil
	}
	return &models.User{ID: id, Email: s.Email}
}

// GetDatabaseURL returns the configured store location with ~ expanded,
// defaulting to the local database file under the XDG data directory.
func (c *Config) GetDatabaseURL() string {
	if c.DatabaseURL == "" {
		return storage.DefaultDBPath()
	}
	return ExpandPath(c.DatabaseURL)
}

// GetCacheDir returns the configured cache directory with ~ expanded.
func (c *Config) GetCacheDir() string {
	if c.CacheDir == "" {
		return ""
	}
	return ExpandPath(c.CacheDir)
}

// ExpandPath expands a leading ~ to the user's home directory. URLs are
// returned unchanged.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage connects to the configured store.
func (c *Config) OpenStorage() (storage.Repository, error) {
	return storage.Open(c.GetDatabaseURL())
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "pulse", "config.toml")
}

// Load reads config from disk and applies environment overrides. A .env
// file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(GetConfigPath(), &cfg); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if url := os.Getenv("PULSE_DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}
	if bridge := os.Getenv("PULSE_BRIDGE_URL"); bridge != "" {
		cfg.BridgeURL = bridge
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// SignIn stores a session and persists it.
func (c *Config) SignIn(user *models.User, token string) error {
	c.Session = Session{UserID: user.ID.String(), Email: user.Email, Token: token}
	return c.Save()
}

// SignOut clears the session and persists the change.
func (c *Config) SignOut() error {
	c.Session = Session{}
	return c.Save()
}

// GeminiAPIKey returns the AI service key from the environment.
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// ResendAPIKey returns the email provider key from the environment.
func ResendAPIKey() string {
	return os.Getenv("RESEND_API_KEY")
}
