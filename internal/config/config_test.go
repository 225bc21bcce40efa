package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CHECKERS_ADDR", "CHECKERS_WEB_DIR", "CHECKERS_LOG_LEVEL",
		"CHECKERS_LOG_PRETTY", "CHECKERS_CORS_ORIGINS", "CHECKERS_OPEN_BROWSER", "CHECKERS_GAME_TTL",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHECKERS_ADDR", ":9000")
	t.Setenv("CHECKERS_WEB_DIR", "./web")
	t.Setenv("CHECKERS_LOG_LEVEL", "debug")
	t.Setenv("CHECKERS_LOG_PRETTY", "false")
	t.Setenv("CHECKERS_OPEN_BROWSER", "1")
	t.Setenv("CHECKERS_GAME_TTL", "15m")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "./web", cfg.WebDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.True(t, cfg.OpenBrowser)
	assert.Equal(t, 15*time.Minute, cfg.GameTTL)
	assert.Equal(t, DefaultCORSOrigins, cfg.CORSOrigins)
}

func TestFromEnv_BadBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHECKERS_LOG_PRETTY", "maybe")

	_, err := FromEnv()
	require.Error(t, err)
}

func TestFromEnv_BadDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHECKERS_GAME_TTL", "soon")

	_, err := FromEnv()
	require.ErrorContains(t, err, "CHECKERS_GAME_TTL")
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CHECKERS_ADDR=127.0.0.1:7777\n"), 0o600))

	// godotenv 不覆盖已存在的变量，t.Setenv 设成空串的也算存在，先删掉
	require.NoError(t, os.Unsetenv("CHECKERS_ADDR"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7777", cfg.Addr)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAddr, cfg.Addr)
}
