package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := NewSessionToken("test-secret", "google-123", RoleStudent, time.Hour)
	require.NoError(t, err)

	userID, role, err := ParseSessionToken("test-secret", token)
	require.NoError(t, err)
	require.Equal(t, "google-123", userID)
	require.Equal(t, RoleStudent, role)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := NewSessionToken("test-secret", "google-123", RoleTeacher, time.Hour)
	require.NoError(t, err)

	_, _, err = ParseSessionToken("other-secret", token)
	require.Error(t, err)
}

func TestSessionTokenExpired(t *testing.T) {
	token, err := NewSessionToken("test-secret", "google-123", RoleTeacher, -time.Minute)
	require.NoError(t, err)

	_, _, err = ParseSessionToken("test-secret", token)
	require.Error(t, err)
}
