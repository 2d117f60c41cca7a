package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokens_IssueAndVerify(t *testing.T) {
	tokens := NewJWTTokens("test-secret")

	signed, err := tokens.Issue("user-1", "organizer@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestJWTTokens_VerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewJWTTokens("secret-a").Issue("user-1", "a@b.co", time.Hour)
	require.NoError(t, err)

	_, err = NewJWTTokens("secret-b").Verify(signed)
	require.Error(t, err)
}

func TestJWTTokens_VerifyRejectsExpired(t *testing.T) {
	tokens := NewJWTTokens("test-secret")
	signed, err := tokens.Issue("user-1", "a@b.co", -time.Minute)
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	require.Error(t, err)
}

func TestJWTTokens_VerifyRejectsGarbage(t *testing.T) {
	_, err := NewJWTTokens("test-secret").Verify("not-a-token")
	require.Error(t, err)
}
