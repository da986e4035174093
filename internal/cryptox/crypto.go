// Package cryptox hashes and verifies account passwords.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/factionwatch/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16
	keySize  = 32
)

// DeriveKey stretches password with argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, keySize)
}

// HashPassword returns the argon2id hash of password and the random salt used.
func HashPassword(password []byte) (hash, salt []byte) {
	salt = common.GenerateRandByteArray(saltSize)
	return DeriveKey(password, salt), salt
}

// CheckPassword compares candidate with hash in constant time.
func CheckPassword(candidate, hash, salt []byte) bool {
	if len(hash) == 0 {
		return false
	}
	derived := DeriveKey(candidate, salt)
	defer common.WipeByteArray(derived)
	return subtle.ConstantTimeCompare(derived, hash) == 1
}
