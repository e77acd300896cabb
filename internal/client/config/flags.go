package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the SQLite database
//	-k string   path to the device key file
//	-f string   log format: text, json or zap
//	-l string   log level: debug, info, warn, error
//	-b string   biometric sensor: none, face, touch, generic
//	-i int      lock countdown interval (in seconds)
//
// os.Args is filtered with flagx.FilterArgs first so that flags owned by
// other components (-c/-config) do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-f", "-l", "-b", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database")
	fs.StringVar(&cfg.DeviceKeyPath, "k", cfg.DeviceKeyPath, "path to the device key file")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json, zap)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.BiometricSensor, "b", cfg.BiometricSensor, "biometric sensor (none, face, touch, generic)")
	countdown := fs.Int("i", int(cfg.LockCountdownInterval.Seconds()), "lock countdown interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.LockCountdownInterval = time.Duration(*countdown) * time.Second
		}
	})
}
