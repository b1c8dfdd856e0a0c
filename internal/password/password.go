// Package password derives and verifies salted password hashes.
//
// Hashing uses bcrypt with a fixed work factor. The salt and cost are
// embedded in the hash output, so verification needs no extra stored state.
package password

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/ecosempre/ecosempre/internal/model"
)

// MinLength is the minimum accepted password length, counted in characters.
const MinLength = 8

// Cost is the bcrypt work factor. Raised over time to keep pace with hardware.
const Cost = 10

// maxBytes is bcrypt's input limit. Longer passwords are truncated rather
// than rejected, the behavior existing accounts were created under.
const maxBytes = 72

// Hash derives a salted bcrypt hash from plaintext.
// Passwords shorter than MinLength characters are rejected before any
// hashing work.
func Hash(plaintext string) (string, error) {
	if utf8.RuneCountInString(plaintext) < MinLength {
		return "", model.NewPasswordTooShortError()
	}

	hashed, err := bcrypt.GenerateFromPassword(truncate(plaintext), Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify reports whether plaintext matches storedHash.
// Inputs shorter than MinLength are rejected without invoking bcrypt, which
// mirrors Hash: no plaintext below the minimum can ever have produced a hash.
func Verify(plaintext, storedHash string) bool {
	if utf8.RuneCountInString(plaintext) < MinLength {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), truncate(plaintext)) == nil
}

// truncate caps plaintext at bcrypt's byte limit without splitting a
// multibyte character.
func truncate(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) <= maxBytes {
		return b
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(b[cut]) {
		cut--
	}
	return b[:cut]
}
