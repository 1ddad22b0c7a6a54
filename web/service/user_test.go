package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	setupTest(t)
	service := UserService{}

	user, err := service.Register("alice", "alice@example.com", "secret123")
	assert.NoError(t, err)
	assert.NotZero(t, user.Id)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")

	// Same email fails before the insert.
	_, err = service.Register("alice2", "alice@example.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Same username with a distinct email hits the store's uniqueness
	// constraint.
	_, err = service.Register("alice", "alice2@example.com", "other")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)

	// Missing fields are rejected up front.
	_, err = service.Register("", "x@example.com", "pw")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestCheckUser(t *testing.T) {
	setupTest(t)
	service := UserService{}

	_, err := service.Register("bob", "bob@example.com", "hunter22")
	assert.NoError(t, err)

	// By username, then by email; first hit wins.
	assert.NotNil(t, service.CheckUser("bob", "hunter22"))
	assert.NotNil(t, service.CheckUser("bob@example.com", "hunter22"))

	assert.Nil(t, service.CheckUser("bob", "wrong"))
	assert.Nil(t, service.CheckUser("nobody", "hunter22"))
}

func TestGetUser(t *testing.T) {
	setupTest(t)
	service := UserService{}

	user, err := service.Register("dave", "dave@example.com", "pw123456")
	assert.NoError(t, err)

	got, err := service.GetUser(user.Id)
	assert.NoError(t, err)
	assert.Equal(t, "dave", got.Username)

	_, err = service.GetUser(user.Id + 1000)
	assert.Error(t, err)
}

func TestDefaultAdminSeededAtFirstBoot(t *testing.T) {
	setupTest(t)
	service := UserService{}

	admin := service.CheckUser("admin", "admin123")
	require.NotNil(t, admin)
	assert.Equal(t, "admin@example.com", admin.Email)
}
