package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	digest, err := h.Hash("Abcdef1!")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(digest, "$2a$"), "digest must be self-describing bcrypt")
	assert.True(t, h.Verify("Abcdef1!", digest))
	assert.False(t, h.Verify("Abcdef1?", digest))
	assert.False(t, h.Verify("", digest))
}

func TestPasswordHasher_SaltedDigests(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	d1, err := h.Hash("Passw0rd!")
	require.NoError(t, err)
	d2, err := h.Hash("Passw0rd!")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
	assert.True(t, h.Verify("Passw0rd!", d1))
	assert.True(t, h.Verify("Passw0rd!", d2))
}

func TestPasswordHasher_VerifyMalformedDigest(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	tests := []struct {
		name   string
		digest string
	}{
		{name: "empty", digest: ""},
		{name: "plain text", digest: "Passw0rd!"},
		{name: "unknown scheme", digest: "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA"},
		{name: "truncated bcrypt", digest: "$2a$04$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, h.Verify("Passw0rd!", tt.digest))
			})
		})
	}
}

func TestPasswordHasher_DigestFromOtherCostVerifies(t *testing.T) {
	old := NewPasswordHasher(bcrypt.MinCost)
	digest, err := old.Hash("Passw0rd!")
	require.NoError(t, err)

	current := NewPasswordHasher(bcrypt.MinCost + 1)

	assert.True(t, current.Verify("Passw0rd!", digest))
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewPasswordHasher(12).cost)
}
