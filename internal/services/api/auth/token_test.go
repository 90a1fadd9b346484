package auth

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanlingo/hanlingo/internal/domain/user"
)

func newTestManager(t *testing.T) *TokenManager {
	t.Helper()
	m, err := NewTokenManager("unit-test-secret", 15*time.Minute)
	require.NoError(t, err)
	return m
}

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	_, err := NewTokenManager("", time.Minute)
	assert.Error(t, err)
}

func TestIssueAccess_RoundTrip(t *testing.T) {
	m := newTestManager(t)
	now := time.Now().UTC().Truncate(time.Second)

	tok, err := m.IssueAccess(now, 42, user.RoleAdmin)
	require.NoError(t, err)

	claims, err := m.Verify(tok, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, string(user.RoleAdmin), claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, now.Add(15*time.Minute).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
}

func TestVerify_ExpiredToken(t *testing.T) {
	m := newTestManager(t)
	now := time.Now().UTC()

	tok, err := m.IssueAccess(now, 1, user.RoleUser)
	require.NoError(t, err)

	_, err = m.Verify(tok, now.Add(16*time.Minute))
	assert.Error(t, err)
}

func TestVerify_WrongSecret(t *testing.T) {
	m := newTestManager(t)
	other, err := NewTokenManager("another-secret", 15*time.Minute)
	require.NoError(t, err)

	now := time.Now().UTC()
	tok, err := m.IssueAccess(now, 1, user.RoleUser)
	require.NoError(t, err)

	_, err = other.Verify(tok, now)
	assert.Error(t, err)
}

func TestVerify_TamperedToken(t *testing.T) {
	m := newTestManager(t)
	now := time.Now().UTC()

	tok, err := m.IssueAccess(now, 1, user.RoleUser)
	require.NoError(t, err)

	tampered := tok[:len(tok)-2] + "xx"
	_, err = m.Verify(tampered, now)
	assert.Error(t, err)
}

func TestVerify_GarbageInput(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Verify("not.a.jwt", time.Now())
	assert.Error(t, err)
}

func TestNewRefreshToken_Shape(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		tok, err := NewRefreshToken()
		require.NoError(t, err)
		require.Len(t, tok, 64)

		_, err = hex.DecodeString(tok)
		require.NoError(t, err)

		_, dup := seen[tok]
		require.False(t, dup)
		seen[tok] = struct{}{}
	}
}
