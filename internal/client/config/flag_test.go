package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name:     "all flags",
			args:     []string{"cmd", "-d", "/tmp/a.db", "-k", "/tmp/a.key", "-f", "zap", "-l", "debug", "-b", "face", "-i", "2"},
			expected: &Config{DatabasePath: "/tmp/a.db", DeviceKeyPath: "/tmp/a.key", LogFormat: "zap", LogLevel: "debug", BiometricSensor: "face", LockCountdownInterval: 2 * time.Second},
		},
		{
			name:     "unrelated flags ignored",
			args:     []string{"cmd", "-c", "conf.json", "-x", "1"},
			expected: &Config{LockCountdownInterval: 500 * time.Millisecond},
		},
		{name: "incorrect countdown interval", args: []string{"cmd", "-i", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{LockCountdownInterval: 500 * time.Millisecond}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
