package hash_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Phutanet200102/api-mongoDB/internal/hash"
)

func TestPassword_SaltedOutput(t *testing.T) {
	h1, err := hash.Password("secret")
	require.NoError(t, err)
	h2, err := hash.Password("secret")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
	require.NotEqual(t, "secret", h1)
}

func TestVerify(t *testing.T) {
	h, err := hash.Password("secret")
	require.NoError(t, err)

	require.True(t, hash.Verify("secret", h))
	require.False(t, hash.Verify("wrong", h))
	require.False(t, hash.Verify("secret", "not-a-bcrypt-hash"))
}
