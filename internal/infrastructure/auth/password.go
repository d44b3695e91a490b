package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input beyond 72 bytes; truncate explicitly so long
// passwords hash and verify consistently.
const maxPasswordBytes = 72

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}

func truncatePassword(password string) []byte {
	encoded := []byte(password)
	if len(encoded) > maxPasswordBytes {
		encoded = encoded[:maxPasswordBytes]
	}
	return encoded
}
