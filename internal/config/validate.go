package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Session store kinds.
const (
	SessionStoreFile   = "file"
	SessionStoreMemory = "memory"
)

// MaxReadRetries bounds API.ReadRetries. Writes are never retried.
const MaxReadRetries = 1

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.API.validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if c.UI.SearchDebounce < 0 {
		return fmt.Errorf("ui: search_debounce must be >= 0 (got %v)", c.UI.SearchDebounce)
	}
	if c.UI.PerPage < 1 || c.UI.PerPage > 200 {
		return fmt.Errorf("ui: per_page must be in [1, 200] (got %d)", c.UI.PerPage)
	}
	return nil
}

func (a *APIConfig) validate() error {
	u, err := url.Parse(a.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", a.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url scheme must be http or https (got %q)", u.Scheme)
	}
	a.BaseURL = strings.TrimRight(a.BaseURL, "/")

	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}
	if a.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be >= 0 (got %v)", a.RetryDelay)
	}
	if a.ReadRetries < 0 || a.ReadRetries > MaxReadRetries {
		return fmt.Errorf("read_retries must be in [0, %d] (got %d)", MaxReadRetries, a.ReadRetries)
	}
	switch a.ProfilePath {
	case "profile", "client-profile":
	default:
		return fmt.Errorf("profile_path must be profile or client-profile (got %q)", a.ProfilePath)
	}
	return nil
}

func (s *SessionConfig) validate() error {
	switch s.Store {
	case SessionStoreMemory:
		return nil
	case SessionStoreFile:
	default:
		return fmt.Errorf("store must be file or memory (got %q)", s.Store)
	}

	if s.Key == "" {
		return fmt.Errorf("key must not be empty")
	}
	if s.Path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolve default path: %w", err)
		}
		s.Path = filepath.Join(dir, "coachctl", "session.json")
	}
	return nil
}
