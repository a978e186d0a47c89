package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	identity := NewIdentity()

	token, err := GenerateToken(identity)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, identity, claims.Identity)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestNewIdentityShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewIdentity()
		assert.Len(t, id, 64)
		assert.False(t, seen[id], "identity repeated")
		seen[id] = true
	}
}
