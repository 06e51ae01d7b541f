package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-server/repositories"
)

func newTokenFixture(t *testing.T) (*UserUseCase, *TokenUseCase) {
	t.Helper()
	database := newTestDB(t)
	users := newUserUseCase(database)
	tokens := NewTokenUseCase(users, repositories.NewAuthTokenPgRepository(database))
	return users, tokens
}

func TestIssueAndResolveToken(t *testing.T) {
	users, tokens := newTokenFixture(t)

	created, err := users.CreateUser("user@example.com", "testpass123", "")
	require.NoError(t, err)

	key, err := tokens.IssueToken("user@example.com", "testpass123")
	require.NoError(t, err)
	require.NotEmpty(t, key)

	user, err := tokens.ResolveToken(key)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestIssueTokenIsIdempotent(t *testing.T) {
	users, tokens := newTokenFixture(t)

	_, err := users.CreateUser("user@example.com", "testpass123", "")
	require.NoError(t, err)

	first, err := tokens.IssueToken("user@example.com", "testpass123")
	require.NoError(t, err)
	second, err := tokens.IssueToken("user@example.com", "testpass123")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestIssueTokenBadCredentials(t *testing.T) {
	users, tokens := newTokenFixture(t)

	_, err := users.CreateUser("user@example.com", "testpass123", "")
	require.NoError(t, err)

	_, err = tokens.IssueToken("user@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = tokens.IssueToken("nobody@example.com", "testpass123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveUnknownToken(t *testing.T) {
	_, tokens := newTokenFixture(t)

	_, err := tokens.ResolveToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.ResolveToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveTokenInactiveUser(t *testing.T) {
	users, tokens := newTokenFixture(t)

	user, err := users.CreateUser("user@example.com", "testpass123", "")
	require.NoError(t, err)

	key, err := tokens.IssueToken("user@example.com", "testpass123")
	require.NoError(t, err)

	user.IsActive = false
	require.NoError(t, users.UserRepo.Update(user))

	_, err = tokens.ResolveToken(key)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
