// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults applied by MergeWithDefaults and Default.
const (
	DefaultRoleLevel       = "mid"
	DefaultEnhancerTimeout = 15 * time.Second
	DefaultCacheTTL        = time.Hour
	DefaultCacheMaxEntries = 1000
	DefaultFetchTimeout    = 30 * time.Second
)

// Environment variables read by ApplyEnv.
const (
	EnvAPIKey          = "GEMINI_API_KEY"
	EnvRedisURL        = "ATS_REDIS_URL"
	EnvCacheTTL        = "ATS_CACHE_TTL"
	EnvEnhancerTimeout = "ATS_ENHANCER_TIMEOUT"
	EnvRoleLevel       = "ATS_ROLE_LEVEL"
)

// Duration is a time.Duration that reads from JSON as a string like "15s" or as nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("duration must be a string or integer: %s", data)
	}
	*d = Duration(n)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Scoring
	RoleLevel string `json:"role_level,omitempty" validate:"omitempty,oneof=entry mid senior"`

	// AI feedback
	EnableAI        bool     `json:"enable_ai,omitempty"`
	APIKey          string   `json:"api_key,omitempty"` // Gemini API key
	Model           string   `json:"model,omitempty"`   // overrides the lite-tier model
	EnhancerTimeout Duration `json:"enhancer_timeout,omitempty" validate:"min=0"`

	// Result cache
	CacheEnabled    bool     `json:"cache_enabled,omitempty"`
	CacheTTL        Duration `json:"cache_ttl,omitempty" validate:"min=0"`
	CacheMaxEntries int      `json:"cache_max_entries,omitempty" validate:"min=0"`
	RedisURL        string   `json:"redis_url,omitempty" validate:"omitempty,url"`

	// Job description fetching
	UseBrowser   bool     `json:"use_browser,omitempty"` // headless browser for SPA job boards
	FetchTimeout Duration `json:"fetch_timeout,omitempty" validate:"min=0"`

	Verbose bool `json:"verbose,omitempty"`
}

// Default returns a config with every default applied.
func Default() Config {
	return Config{
		RoleLevel:       DefaultRoleLevel,
		EnhancerTimeout: Duration(DefaultEnhancerTimeout),
		CacheTTL:        Duration(DefaultCacheTTL),
		CacheMaxEntries: DefaultCacheMaxEntries,
		FetchTimeout:    Duration(DefaultFetchTimeout),
	}
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks field values against their validate tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from the environment. Unset variables leave fields alone;
// unparsable durations are errors.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvRedisURL); v != "" {
		c.RedisURL = v
		c.CacheEnabled = true
	}
	if v := os.Getenv(EnvRoleLevel); v != "" {
		c.RoleLevel = v
	}
	if v := os.Getenv(EnvCacheTTL); v != "" {
		d, err := parseEnvDuration(EnvCacheTTL, v)
		if err != nil {
			return err
		}
		c.CacheTTL = d
	}
	if v := os.Getenv(EnvEnhancerTimeout); v != "" {
		d, err := parseEnvDuration(EnvEnhancerTimeout, v)
		if err != nil {
			return err
		}
		c.EnhancerTimeout = d
	}
	return nil
}

// parseEnvDuration accepts "30s" style durations or a bare number of seconds.
func parseEnvDuration(name, value string) (Duration, error) {
	if secs, err := strconv.Atoi(value); err == nil {
		return Duration(time.Duration(secs) * time.Second), nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("config error: %s: invalid duration %q", name, value)
	}
	return Duration(d), nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
// Bool fields are not merged; flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.RoleLevel == "" {
		result.RoleLevel = defaults.RoleLevel
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.EnhancerTimeout == 0 {
		result.EnhancerTimeout = defaults.EnhancerTimeout
	}
	if result.CacheTTL == 0 {
		result.CacheTTL = defaults.CacheTTL
	}
	if result.CacheMaxEntries == 0 {
		result.CacheMaxEntries = defaults.CacheMaxEntries
	}
	if result.FetchTimeout == 0 {
		result.FetchTimeout = defaults.FetchTimeout
	}

	return result
}
