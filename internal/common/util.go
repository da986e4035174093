package common

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// MakeRandHexString generates a random hexadecimal string of the given size.
// The resulting string is twice as long as size.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// GenerateRandByteArray returns size cryptographically random bytes.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	_, _ = rand.Read(b)
	return b
}

// WipeByteArray overwrites b with zeros. A nil slice is ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// NewTimeID returns an opaque id made of the unix milliseconds of t and a
// random suffix, e.g. "1760870000000-9f2d4c3a".
func NewTimeID(t time.Time) string {
	suffix, err := MakeRandHexString(4)
	if err != nil {
		suffix = hex.EncodeToString(GenerateRandByteArray(4))
	}
	return fmt.Sprintf("%d-%s", t.UnixMilli(), suffix)
}
