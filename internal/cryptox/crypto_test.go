package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, salt := HashPassword([]byte("hunter2"))
	require.Len(t, hash, keySize)
	require.Len(t, salt, saltSize)

	assert.True(t, CheckPassword([]byte("hunter2"), hash, salt))
	assert.False(t, CheckPassword([]byte("hunter3"), hash, salt))
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	h1, s1 := HashPassword([]byte("same"))
	h2, s2 := HashPassword([]byte("same"))
	if bytes.Equal(s1, s2) {
		t.Logf("warning: two salts are identical; extremely unlikely")
	}
	if bytes.Equal(h1, h2) && !bytes.Equal(s1, s2) {
		t.Fatalf("different salts must give different hashes")
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")
	assert.Equal(t, DeriveKey([]byte("pw"), salt), DeriveKey([]byte("pw"), salt))
}

func TestCheckPassword_EmptyHash(t *testing.T) {
	assert.False(t, CheckPassword([]byte(""), nil, nil))
}
