package config

import "github.com/caarlos0/env/v11"

// EnvPrefix namespaces every environment variable read by parseEnv.
const EnvPrefix = "GOPHAUTH_"

// parseEnv overlays cfg with GOPHAUTH_* environment variables, e.g.
// GOPHAUTH_DATABASE_PATH or GOPHAUTH_LOCK_COUNTDOWN_INTERVAL=500ms.
// Unset variables leave the current values untouched.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
