// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	userID := uuid.New()
	token, err := GenerateJWT(userID, "storekeeper", true, 1)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "storekeeper", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "highgrip-storefront", claims.Issuer)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("first-secret")
	token, err := GenerateJWT(uuid.New(), "storekeeper", false, 1)
	require.NoError(t, err)

	SetJWTSecret("second-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
