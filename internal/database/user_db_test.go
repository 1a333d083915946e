package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticateUser(t *testing.T) {
	pool := testPool(t)
	user := seedUser(t, pool)

	// RegisterUser must never hand the hash back to the caller.
	assert.Empty(t, user.Password)

	authenticated, err := AuthenticateUser(pool, user.Email, "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authenticated.ID)
	assert.Empty(t, authenticated.Password)

	_, err = AuthenticateUser(pool, user.Email, "wrong-password")
	require.Error(t, err)

	_, err = AuthenticateUser(pool, "nobody@example.com", "secret123")
	require.Error(t, err)
}

func TestRegisterUserCreatesDefaultSettings(t *testing.T) {
	pool := testPool(t)
	user := seedUser(t, pool)

	settings, err := GetUserSettingsByID(pool, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, settings.UserID)
	assert.NotEmpty(t, settings.Currency)
}
