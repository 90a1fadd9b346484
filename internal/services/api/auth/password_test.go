package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-пароль")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "s3cret")

	ok, err := CheckPassword(hash, "s3cret-пароль")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckPassword_MismatchIsNotAnError(t *testing.T) {
	hash, err := HashPassword("right")
	require.NoError(t, err)

	ok, err := CheckPassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	_, err := CheckPassword("not-a-bcrypt-hash", "whatever")
	assert.Error(t, err)
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	h1, err := HashPassword("same")
	require.NoError(t, err)
	h2, err := HashPassword("same")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
