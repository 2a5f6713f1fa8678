package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"role_level": "senior",
		"enable_ai": true,
		"enhancer_timeout": "5s",
		"cache_enabled": true,
		"cache_ttl": "30m",
		"cache_max_entries": 50,
		"redis_url": "redis://localhost:6379/0",
		"fetch_timeout": 1000000000,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "senior", cfg.RoleLevel)
	assert.True(t, cfg.EnableAI)
	assert.Equal(t, 5*time.Second, cfg.EnhancerTimeout.Std())
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL.Std())
	assert.Equal(t, 50, cfg.CacheMaxEntries)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, time.Second, cfg.FetchTimeout.Std())
	assert.True(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.ErrorContains(t, err, "config path is empty")

	_, err = LoadConfig("/nonexistent/path/config.json")
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.ErrorContains(t, err, "failed to parse config JSON")

	_, err = LoadConfig(writeConfig(t, `{"cache_ttl": "soon"}`))
	assert.ErrorContains(t, err, "invalid duration")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Default(), false},
		{"empty", Config{}, false},
		{"unknown role", Config{RoleLevel: "principal"}, true},
		{"bad redis url", Config{RedisURL: "not a url"}, true},
		{"negative entries", Config{CacheMaxEntries: -1}, true},
		{"negative ttl", Config{CacheTTL: Duration(-time.Second)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key")
	t.Setenv(EnvRedisURL, "redis://cache:6379/1")
	t.Setenv(EnvRoleLevel, "entry")
	t.Setenv(EnvCacheTTL, "120")
	t.Setenv(EnvEnhancerTimeout, "750ms")

	cfg := Config{}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, "entry", cfg.RoleLevel)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL.Std())
	assert.Equal(t, 750*time.Millisecond, cfg.EnhancerTimeout.Std())
}

func TestApplyEnv_InvalidDuration(t *testing.T) {
	t.Setenv(EnvCacheTTL, "forever")

	cfg := Config{}
	assert.ErrorContains(t, cfg.ApplyEnv(), EnvCacheTTL)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{RoleLevel: "senior", CacheTTL: Duration(time.Minute)}

	merged := cfg.MergeWithDefaults(Default())

	assert.Equal(t, "senior", merged.RoleLevel)
	assert.Equal(t, time.Minute, merged.CacheTTL.Std())
	assert.Equal(t, DefaultEnhancerTimeout, merged.EnhancerTimeout.Std())
	assert.Equal(t, DefaultCacheMaxEntries, merged.CacheMaxEntries)
	assert.Equal(t, DefaultFetchTimeout, merged.FetchTimeout.Std())

	// original is unchanged
	assert.Equal(t, 0, cfg.CacheMaxEntries)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}
