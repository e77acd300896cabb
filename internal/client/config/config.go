package config

import (
	"path/filepath"
	"time"
)

// Config holds runtime settings for the gophauth CLI.
//
// Fields:
//   - DatabasePath: SQLite file backing the credential vault and preferences.
//   - DeviceKeyPath: per-device secret the vault key is derived from.
//   - LogFormat / LogLevel: see logging.New ("text", "json", "zap").
//   - BiometricSensor: simulated sensor kind ("none", "face", "touch", "generic").
//   - LockCountdownInterval: how often the CLI re-checks an active lock.
type Config struct {
	DatabasePath          string        `env:"DATABASE_PATH"`
	DeviceKeyPath         string        `env:"DEVICE_KEY_PATH"`
	LogFormat             string        `env:"LOG_FORMAT"`
	LogLevel              string        `env:"LOG_LEVEL"`
	BiometricSensor       string        `env:"BIOMETRIC_SENSOR"`
	LockCountdownInterval time.Duration `env:"LOCK_COUNTDOWN_INTERVAL"`
}

// DefaultDataDir is where local state lives unless overridden.
const DefaultDataDir = ".gophauth"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = filepath.Join(DefaultDataDir, "auth.db")
	c.DeviceKeyPath = filepath.Join(DefaultDataDir, "device.key")
	c.LogFormat = "text"
	c.LogLevel = "warn"
	c.BiometricSensor = "none"
	c.LockCountdownInterval = time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given), GOPHAUTH_* environment variables and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
