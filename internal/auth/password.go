package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost trades hashing latency against offline brute-force cost.
const bcryptCost = 10

// HashPassword hashes a plaintext password with a per-call random salt.
// Two calls on the same input produce different hashes.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
// A malformed stored hash verifies false rather than erroring, so callers
// cannot tell a corrupt record apart from a wrong password.
func CheckPassword(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
