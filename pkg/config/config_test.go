package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	setDefaults()
}

func TestDefaults(t *testing.T) {
	resetViper(t)

	assert.Equal(t, 8080, GetInt("server.port"))
	assert.Equal(t, "E", GetString("content.language"))
	assert.Equal(t, "https://b.jw-cdn.org/apis/pub-media", GetString("pub_media.base_url"))
	assert.Equal(t, 24*time.Hour, GetDuration("sync.period"))
	assert.True(t, GetBool("sync.enabled"))
}

func TestEnvOverride(t *testing.T) {
	resetViper(t)
	t.Setenv("MEETINGCAST_SERVER_PORT", "9090")
	t.Setenv("MEETINGCAST_CONTENT_LANGUAGE", "S")

	viper.SetEnvPrefix("MEETINGCAST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	assert.Equal(t, 9090, GetInt("server.port"))
	assert.Equal(t, "S", GetString("content.language"))
}

func TestValidateAutoCorrects(t *testing.T) {
	resetViper(t)
	viper.Set("content.language", "")
	viper.Set("sync.period", time.Duration(0))

	require.NoError(t, validate())
	assert.Equal(t, "E", GetString("content.language"))
	assert.Equal(t, 24*time.Hour, GetDuration("sync.period"))
}

func TestValidateRejectsBadPort(t *testing.T) {
	resetViper(t)
	viper.Set("server.port", 0)

	assert.Error(t, validate())
}

func TestConfigStructValidate(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: 8080}}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "E", cfg.Content.Language)
	assert.Equal(t, 24*time.Hour, cfg.Sync.Period)

	bad := &Config{Server: ServerConfig{Port: -1}}
	assert.Error(t, bad.Validate())
}

func TestGetConfigUnmarshals(t *testing.T) {
	resetViper(t)
	viper.Set("server.host", "127.0.0.1")
	viper.Set("database.path", "./test.db")

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "./test.db", cfg.Database.Path)
	assert.Equal(t, 8080, cfg.Server.Port)
}
