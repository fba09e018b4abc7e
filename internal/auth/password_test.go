package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Success(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected bcrypt hash prefix")
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	hash1, err := HashPassword("secret")
	require.NoError(t, err)

	hash2, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "bcrypt should salt each hash")
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{"matching password", "correct-password", hash, true},
		{"wrong password", "wrong-password", hash, false},
		{"empty password", "", hash, false},
		{"malformed hash", "correct-password", "not-a-hash", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPassword(tt.password, tt.hash))
		})
	}
}
