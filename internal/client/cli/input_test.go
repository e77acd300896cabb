package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func stubTerminal(t *testing.T, terminal bool, read func(int) ([]byte, error)) {
	t.Helper()
	origIs, origRead := isTerminal, readPassword
	isTerminal = func(int) bool { return terminal }
	if read != nil {
		readPassword = read
	}
	t.Cleanup(func() {
		isTerminal = origIs
		readPassword = origRead
	})
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) { return []byte("s3cret"), nil })

	var out bytes.Buffer
	pw, err := GetPassword(rdr("ignored\n"), "Enter password", &out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", string(pw))
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) { return nil, errors.New("boom") })

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), "Enter password", &out)
	require.Error(t, err)
}

func TestGetPassword_PipedInput(t *testing.T) {
	stubTerminal(t, false, func(int) ([]byte, error) {
		t.Fatal("terminal must not be read")
		return nil, nil
	})

	var out bytes.Buffer
	pw, err := GetPassword(rdr("piped-pw\nnext\n"), "Enter password", &out)
	require.NoError(t, err)
	assert.Equal(t, "piped-pw", string(pw))
}

func TestGetConfirmation(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		assert.Equal(t, tt.want, GetConfirmation(rdr(tt.input), "Sure?", &out), tt.input)
		assert.Equal(t, "Sure? (y/N): ", out.String())
	}
}
