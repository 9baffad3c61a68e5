package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString generates a random hexadecimal string from size random
// bytes; the resulting string is twice as long as size.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray overwrites the slice with zeros. Used to scrub prompted
// passwords from memory once they have been hashed or checked.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
