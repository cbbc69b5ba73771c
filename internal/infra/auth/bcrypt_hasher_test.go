package auth

import (
	"testing"

	"linkvault/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *bcryptHasher {
	// Minimum cost keeps the test fast; the algorithm is identical.
	return &bcryptHasher{cost: 4}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "super-secret-pw"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	ok, err := hasher.Check(password, hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newTestHasher()

	password := "same-password-twice"
	first, err := hasher.Hash(password)
	require.NoError(t, err)
	second, err := hasher.Hash(password)
	require.NoError(t, err)

	// Same input, different output across calls.
	assert.NotEqual(t, first, second)

	// Both hashes still verify.
	ok, err := hasher.Check(password, first)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = hasher.Check(password, second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_CheckMismatch(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("correct-password")
	require.NoError(t, err)

	// A mismatch is a clean false, not an error.
	ok, err := hasher.Check("wrong-password", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := newTestHasher()

	// A hash that is not bcrypt output indicates storage corruption.
	ok, err := hasher.Check("any-password", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("pw1")
	require.NoError(t, err)

	ok, err := hasher.Check("pw1", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	// Out-of-range and missing config both fall back to the bcrypt default.
	for _, cfg := range []*config.Config{
		{},
		{Auth: &config.AuthConfig{BcryptCost: 99}},
	} {
		hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
		require.True(t, ok)
		assert.Equal(t, 10, hasher.cost) // bcrypt.DefaultCost
	}
}
