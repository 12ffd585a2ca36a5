package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// Crypt hashes the password using crypto/bcrypt.
func Crypt(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashedPassword), err
}

// VerifyPassword checks a plaintext password against the stored bcrypt hash.
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
