package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandByteArray_Length(t *testing.T) {
	a := GenerateRandByteArray(32)
	b := GenerateRandByteArray(32)
	require.Len(t, a, 32)
	require.Len(t, b, 32)
	if string(a) == string(b) {
		t.Logf("two random 32-byte arrays are identical; extremely unlikely")
	}
}

func TestWipeByteArray(t *testing.T) {
	buf := []byte("secret")
	WipeByteArray(buf)
	assert.Equal(t, make([]byte, 6), buf)

	WipeByteArray(nil)
}
