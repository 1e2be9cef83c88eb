package config

import "time"

// Config is the root application configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig holds settings of the REST backend transport.
type APIConfig struct {
	BaseURL     string        `yaml:"base_url"     env:"API_BASE_URL"     env-required:"true"`
	Timeout     time.Duration `yaml:"timeout"      env:"API_TIMEOUT"      env-default:"15s"`
	RetryDelay  time.Duration `yaml:"retry_delay"  env:"API_RETRY_DELAY"  env-default:"500ms"`
	ReadRetries int           `yaml:"read_retries" env:"API_READ_RETRIES" env-default:"1"`
	ProfilePath string        `yaml:"profile_path" env:"API_PROFILE_PATH" env-default:"profile"`
	UserAgent   string        `yaml:"user_agent"   env:"API_USER_AGENT"   env-default:"coachctl"`
}

// SessionConfig holds where the auth token is persisted.
type SessionConfig struct {
	Store string `yaml:"store" env:"SESSION_STORE" env-default:"file"`
	Path  string `yaml:"path"  env:"SESSION_PATH"  env-default:""`
	Key   string `yaml:"key"   env:"SESSION_KEY"   env-default:"auth_token"`
}

// UIConfig holds presentation behaviour shared by all pages.
type UIConfig struct {
	SearchDebounce time.Duration `yaml:"search_debounce" env:"UI_SEARCH_DEBOUNCE" env-default:"500ms"`
	PerPage        int           `yaml:"per_page"        env:"UI_PER_PAGE"        env-default:"15"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
