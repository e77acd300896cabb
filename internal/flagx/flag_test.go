package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.toml", "-d", "auth.db"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.toml"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-d", "auth.db"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "order preserved",
			args:         []string{"--config=first.json", "-c", "second.json", "-x", "1"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=first.json", "-c", "second.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next flag is not a value",
			args:         []string{"-c", "-d", "auth.db"},
			allowedFlags: []string{"-c", "-d"},
			want:         []string{"-c", "-d", "auth.db"},
		},
		{
			name:         "equals value may start with dashes",
			args:         []string{"--config=--weird.json"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=--weird.json"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "repeated flag kept",
			args:         []string{"-i", "1", "-i", "2"},
			allowedFlags: []string{"-i"},
			want:         []string{"-i", "1", "-i", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "/etc/gophauth.toml"}, "/etc/gophauth.toml"},
		{"long", []string{"-config", "/etc/gophauth.json"}, "/etc/gophauth.json"},
		{"long with equals", []string{"--config=conf.toml"}, "conf.toml"},
		{"last wins", []string{"-c", "1.json", "-config", "2.json"}, "2.json"},
		{"mixed with other flags", []string{"-d", "auth.db", "-c", "conf.toml", "-l", "debug"}, "conf.toml"},
		{"absent", []string{"-d", "auth.db"}, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFileFlag(tt.args))
		})
	}
}
