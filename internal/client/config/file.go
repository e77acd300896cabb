package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/dmitrijs2005/gophauth/internal/timex"
)

// FileConfig is the DTO for JSON and TOML config files. Durations use
// timex.Duration so they may be written as "1s" or integer nanoseconds.
type FileConfig struct {
	DatabasePath          string         `json:"database_path" toml:"database_path"`
	DeviceKeyPath         string         `json:"device_key_path" toml:"device_key_path"`
	LogFormat             string         `json:"log_format" toml:"log_format"`
	LogLevel              string         `json:"log_level" toml:"log_level"`
	BiometricSensor       string         `json:"biometric_sensor" toml:"biometric_sensor"`
	LockCountdownInterval timex.Duration `json:"lock_countdown_interval" toml:"lock_countdown_interval"`
}

// parseFile overlays cfg with the config file named by -c or -config.
// Files ending in .toml are decoded as TOML, everything else as JSON.
// Only fields present in the file override earlier values. Read or decode
// errors panic; the caller is expected to fail fast on bad configuration.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	var fc FileConfig

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			panic(err)
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			panic(err)
		}
		if err := json.Unmarshal(data, &fc); err != nil {
			panic(err)
		}
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.DeviceKeyPath != "" {
		cfg.DeviceKeyPath = fc.DeviceKeyPath
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.BiometricSensor != "" {
		cfg.BiometricSensor = fc.BiometricSensor
	}
	if fc.LockCountdownInterval.Duration > 0 {
		cfg.LockCountdownInterval = fc.LockCountdownInterval.Duration
	}
}
