package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SEARCH_CLIENT_SERVER_URL", "http://localhost:8080/crafter-search/")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", cfg.Charset)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.Debug)

	c, err := NewFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/crafter-search", c.ServerURL())
	assert.Equal(t, 30*time.Second, c.http.Timeout)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SEARCH_CLIENT_SERVER_URL", "http://search:9000")
	t.Setenv("SEARCH_CLIENT_CHARSET", "ISO-8859-1")
	t.Setenv("SEARCH_CLIENT_TIMEOUT", "5s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	c, err := NewFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "ISO-8859-1", c.Charset())
	assert.Equal(t, 5*time.Second, c.http.Timeout)
}

func TestLoadConfig_MissingServerURL(t *testing.T) {
	t.Setenv("SEARCH_CLIENT_SERVER_URL", "")
	_, err := LoadConfig()
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{ServerURL: "not a url", Charset: "UTF-8", Timeout: time.Second}
	require.Error(t, cfg.Validate())

	cfg.ServerURL = "http://x"
	require.NoError(t, cfg.Validate())

	cfg.Timeout = 0
	require.Error(t, cfg.Validate())
}
