// Package config loads runtime configuration for the gophauth CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config (JSON, or TOML when
//     the file name ends in .toml).
//  3. GOPHAUTH_* environment variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   path to the SQLite database
//	-k string   path to the device key file
//	-f string   log format (text, json, zap)
//	-l string   log level
//	-b string   biometric sensor (none, face, touch, generic)
//	-i int      lock countdown interval (seconds)
//
// # File schema
//
//	{
//	  "database_path": ".gophauth/auth.db",
//	  "device_key_path": ".gophauth/device.key",
//	  "log_format": "json",
//	  "log_level": "info",
//	  "biometric_sensor": "face",
//	  "lock_countdown_interval": "1s"
//	}
//
// The TOML form uses the same keys.
package config
