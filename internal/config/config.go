package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config is the complete runtime configuration shared by every frontend.
type Config struct {
	Game    GameConfig    `toml:"game"`
	Log     LogConfig     `toml:"log"`
	Sound   SoundConfig   `toml:"sound"`
	SSH     SSHConfig     `toml:"ssh"`
	Web     WebConfig     `toml:"web"`
	Desktop DesktopConfig `toml:"desktop"`
}

// GameConfig tunes the simulation.
type GameConfig struct {
	Enemies  int   `toml:"enemies"`
	MinSpeed int   `toml:"min_speed"`
	MaxSpeed int   `toml:"max_speed"`
	FPS      int   `toml:"fps"`
	Seed     int64 `toml:"seed"` // 0 picks a time based seed
}

// LogConfig selects the log level and, for terminal frontends, the log file.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// SoundConfig toggles audio effects.
type SoundConfig struct {
	Enabled bool `toml:"enabled"`
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Host        string `toml:"host"`
	Port        string `toml:"port"`
	HostKeyPath string `toml:"host_key"`
}

// WebConfig configures the landing page server.
type WebConfig struct {
	Host        string `toml:"host"`
	Port        string `toml:"port"`
	DisplayHost string `toml:"display_host"`
}

// DesktopConfig configures the windowed frontend.
type DesktopConfig struct {
	AssetDir string  `toml:"asset_dir"`
	Scale    float64 `toml:"scale"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Enemies:  DefaultEnemies,
			MinSpeed: DefaultMinSpeed,
			MaxSpeed: DefaultMaxSpeed,
			FPS:      DefaultFPS,
		},
		Log: LogConfig{
			Level: "info",
		},
		Sound: SoundConfig{
			Enabled: true,
		},
		SSH: SSHConfig{
			Host:        "::",
			Port:        "2222",
			HostKeyPath: ".ssh/frogger_ed25519",
		},
		Web: WebConfig{
			Host:        "0.0.0.0",
			Port:        "8080",
			DisplayHost: "your-server.com",
		},
		Desktop: DesktopConfig{
			AssetDir: ".",
			Scale:    1,
		},
	}
}

// Load reads the TOML file at path on top of the defaults and applies
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() {
	c.Game.Enemies = GetEnvInt("FROGGER_ENEMIES", c.Game.Enemies)
	c.Game.MinSpeed = GetEnvInt("FROGGER_MIN_SPEED", c.Game.MinSpeed)
	c.Game.MaxSpeed = GetEnvInt("FROGGER_MAX_SPEED", c.Game.MaxSpeed)
	c.Game.FPS = GetEnvInt("FROGGER_FPS", c.Game.FPS)
	c.Log.Level = GetEnv("FROGGER_LOG_LEVEL", c.Log.Level)
	c.Log.File = GetEnv("FROGGER_LOG_FILE", c.Log.File)
	c.Sound.Enabled = GetEnvBool("FROGGER_SOUND", c.Sound.Enabled)
	c.SSH.Host = GetEnv("SSH_HOST", c.SSH.Host)
	c.SSH.Port = GetEnv("SSH_PORT", c.SSH.Port)
	c.SSH.HostKeyPath = GetEnv("SSH_HOST_KEY", c.SSH.HostKeyPath)
	c.Web.Host = GetEnv("WEB_HOST", c.Web.Host)
	c.Web.Port = GetEnv("WEB_PORT", c.Web.Port)
	c.Web.DisplayHost = GetEnv("SSH_DISPLAY_HOST", c.Web.DisplayHost)
	c.Desktop.AssetDir = GetEnv("FROGGER_ASSETS", c.Desktop.AssetDir)
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Game.Enemies < 0 {
		errs = append(errs, fmt.Errorf("game.enemies must not be negative, got %d", c.Game.Enemies))
	}
	if c.Game.MinSpeed < 0 {
		errs = append(errs, fmt.Errorf("game.min_speed must not be negative, got %d", c.Game.MinSpeed))
	}
	if c.Game.MaxSpeed < c.Game.MinSpeed {
		errs = append(errs, fmt.Errorf("game.max_speed (%d) is below game.min_speed (%d)", c.Game.MaxSpeed, c.Game.MinSpeed))
	}
	if c.Game.FPS <= 0 {
		errs = append(errs, fmt.Errorf("game.fps must be positive, got %d", c.Game.FPS))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Desktop.Scale <= 0 {
		errs = append(errs, fmt.Errorf("desktop.scale must be positive, got %g", c.Desktop.Scale))
	}
	return errors.Join(errs...)
}

// NewLogger builds a structured logger writing to w at the named level.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "frogger",
	}), nil
}
