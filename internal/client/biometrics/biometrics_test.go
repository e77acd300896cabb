package biometrics

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    models.BiometryKind
		wantErr bool
	}{
		{"", models.BiometryNone, false},
		{"none", models.BiometryNone, false},
		{"Face", models.BiometryFace, false},
		{" touch ", models.BiometryTouch, false},
		{"generic", models.BiometryGeneric, false},
		{"iris", models.BiometryNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Face ID", DisplayName(models.BiometryFace))
	assert.Equal(t, "Touch ID", DisplayName(models.BiometryTouch))
	assert.Equal(t, "Biometrics", DisplayName(models.BiometryGeneric))
	assert.Equal(t, "Biometric Authentication", DisplayName(models.BiometryNone))
}

func TestUnavailable(t *testing.T) {
	var c Capability = Unavailable{}
	st := c.Probe(context.Background())
	assert.False(t, st.Available)
	assert.Equal(t, models.BiometryNone, st.Kind)
	assert.False(t, c.Prompt(context.Background(), "anything"))
}

func TestNew(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	_, ok := New(models.BiometryNone, r, &out).(Unavailable)
	assert.True(t, ok)

	c := New(models.BiometryTouch, r, &out)
	st := c.Probe(context.Background())
	assert.True(t, st.Available)
	assert.Equal(t, models.BiometryTouch, st.Kind)
}

func TestTerminalSensor_Prompt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes long", "YES\n", true},
		{"no", "n\n", false},
		{"empty line", "\n", false},
		{"eof after answer", "y", true},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			s := NewTerminalSensor(models.BiometryFace, bufio.NewReader(strings.NewReader(tt.input)), &out)

			got := s.Prompt(context.Background(), "Authenticate to sign in")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, "[Face ID] Authenticate to sign in (y/N): ", out.String())
		})
	}
}

func TestTerminalSensor_CancelledContext(t *testing.T) {
	var out bytes.Buffer
	s := NewTerminalSensor(models.BiometryFace, bufio.NewReader(strings.NewReader("y\n")), &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, s.Prompt(ctx, "Authenticate"))
	assert.Empty(t, out.String())
}

func TestTerminalSensor_NoneKindNeverPrompts(t *testing.T) {
	var out bytes.Buffer
	s := NewTerminalSensor(models.BiometryNone, bufio.NewReader(strings.NewReader("y\n")), &out)

	assert.False(t, s.Probe(context.Background()).Available)
	assert.False(t, s.Prompt(context.Background(), "Authenticate"))
	assert.Empty(t, out.String())
}
