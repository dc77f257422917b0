package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shinyflakes/app/services"
	"github.com/shashiranjanraj/shinyflakes/pkg/auth"
)

func TestRegisterAndLogin(t *testing.T) {
	setupDB(t)
	svc := services.NewAuthService()

	user, token, err := svc.Register("Jesse Pinkman", "jesse@shinyflakes.test", "yoscience")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "user", user.Role)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "yoscience", user.Password, "password must be stored hashed")

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, loginToken, err := svc.Login("jesse@shinyflakes.test", "yoscience")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupDB(t)
	svc := services.NewAuthService()

	_, _, err := svc.Register("Jesse Pinkman", "jesse@shinyflakes.test", "yoscience")
	require.NoError(t, err)

	_, _, err = svc.Register("Someone Else", "jesse@shinyflakes.test", "different")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	setupDB(t)
	svc := services.NewAuthService()

	_, _, err := svc.Register("Jesse Pinkman", "jesse@shinyflakes.test", "yoscience")
	require.NoError(t, err)

	_, _, err = svc.Login("jesse@shinyflakes.test", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@shinyflakes.test", "yoscience")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	setupDB(t)
	svc := services.NewAuthService()

	_, token, err := svc.Register("Jesse Pinkman", "jesse@shinyflakes.test", "yoscience")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(claims))

	_, err = auth.ValidateToken(token)
	assert.Error(t, err, "revoked token must stop validating")
}

func TestUpdateProfile(t *testing.T) {
	setupDB(t)
	svc := services.NewAuthService()

	user, _, err := svc.Register("Jesse Pinkman", "jesse@shinyflakes.test", "yoscience")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(user.ID, "Cap'n Cook")
	require.NoError(t, err)
	assert.Equal(t, "Cap'n Cook", updated.FullName)

	// Empty input keeps the existing name.
	kept, err := svc.UpdateProfile(user.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "Cap'n Cook", kept.FullName)
}
