package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frogger.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultEnemies, cfg.Game.Enemies)
	assert.Equal(t, DefaultMinSpeed, cfg.Game.MinSpeed)
	assert.Equal(t, DefaultMaxSpeed, cfg.Game.MaxSpeed)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFPS, cfg.Game.FPS)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[game]
enemies = 5
min_speed = 50
max_speed = 75
seed = 42

[log]
level = "debug"

[ssh]
port = "2323"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Game.Enemies)
	assert.Equal(t, 50, cfg.Game.MinSpeed)
	assert.Equal(t, 75, cfg.Game.MaxSpeed)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "2323", cfg.SSH.Port)
	// Untouched sections keep their defaults.
	assert.Equal(t, "8080", cfg.Web.Port)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[game]
enemys = 5
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.enemys")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FROGGER_ENEMIES", "7")
	t.Setenv("FROGGER_SOUND", "false")
	t.Setenv("SSH_PORT", "2424")
	t.Setenv("FROGGER_FPS", "not-a-number")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Game.Enemies)
	assert.False(t, cfg.Sound.Enabled)
	assert.Equal(t, "2424", cfg.SSH.Port)
	assert.Equal(t, DefaultFPS, cfg.Game.FPS)
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.Game.Enemies = -1
	cfg.Game.MinSpeed = 300
	cfg.Game.MaxSpeed = 200
	cfg.Game.FPS = 0
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"game.enemies", "game.max_speed", "game.fps", "log.level"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=value")

	_, err = NewLogger(&buf, "nope")
	assert.Error(t, err)
}

func TestFrameTime(t *testing.T) {
	assert.Equal(t, time.Second/60, FrameTime(60))
	assert.Equal(t, time.Second/DefaultFPS, FrameTime(0))
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("FROGGER_TEST_STR", "abc")
	t.Setenv("FROGGER_TEST_INT", "12")
	t.Setenv("FROGGER_TEST_BOOL", "true")

	assert.Equal(t, "abc", GetEnv("FROGGER_TEST_STR", "x"))
	assert.Equal(t, "x", GetEnv("FROGGER_TEST_UNSET", "x"))
	assert.Equal(t, 12, GetEnvInt("FROGGER_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("FROGGER_TEST_STR", 1))
	assert.True(t, GetEnvBool("FROGGER_TEST_BOOL", false))
	assert.True(t, GetEnvBool("FROGGER_TEST_UNSET", true))
}
