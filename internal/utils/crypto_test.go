// internal/utils/crypto_test.go
package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomString(t *testing.T) {
	s, err := GenerateRandomString(16)
	require.NoError(t, err)
	assert.Len(t, s, 16)

	other, err := GenerateRandomString(16)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)
}

func TestGenerateOrderReference(t *testing.T) {
	ref, err := GenerateOrderReference()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "HG-"))
	assert.Len(t, ref, 13)
}
