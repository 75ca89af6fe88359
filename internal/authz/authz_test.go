package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appdev-labs/photofeed/pkg/password"
)

func TestRequireAuthenticated(t *testing.T) {
	assert.ErrorIs(t, RequireAuthenticated(""), ErrUnauthenticated)
	assert.NoError(t, RequireAuthenticated("alice"))
}

func TestRequireOwner(t *testing.T) {
	assert.NoError(t, RequireOwner("alice", "alice"))
	assert.ErrorIs(t, RequireOwner("alice", "bob"), ErrForbidden)
}

func TestVerifyCredential(t *testing.T) {
	stored := password.Hash("hunter2")

	assert.NoError(t, VerifyCredential("hunter2", stored))
	assert.ErrorIs(t, VerifyCredential("hunter3", stored), ErrForbidden)

	err := VerifyCredential("hunter2", "garbage")
	assert.ErrorIs(t, err, password.ErrMalformedCredential)
	assert.NotErrorIs(t, err, ErrForbidden)
}

func TestConfirmNewPassword(t *testing.T) {
	assert.NoError(t, ConfirmNewPassword("a", "a"))
	assert.ErrorIs(t, ConfirmNewPassword("a", "b"), ErrConfirmationMismatch)
}
