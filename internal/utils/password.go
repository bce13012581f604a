package utils

import (
	"crypto/sha256"  // Account password hashing
	"crypto/subtle"  // Constant-time comparison
	"encoding/hex"   // Hex encoding of the digest

	"golang.org/x/crypto/bcrypt" // Admin secret hashing
)

// HashPassword returns the sha256 hex digest of a password. The account file
// stores digests in exactly this form, so changing the scheme would break
// every existing file.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password)) // Hash the password
	return hex.EncodeToString(sum[:])      // Hex-encode the digest
}

// CheckAdminSecret verifies the admin-unlock secret. When a bcrypt hash is
// configured it wins over the plaintext secret, so deployments can keep the
// plaintext out of the environment.
func CheckAdminSecret(given, plain, bcryptHash string) bool {
	if bcryptHash != "" {
		// Compare against the configured bcrypt hash
		return bcrypt.CompareHashAndPassword([]byte(bcryptHash), []byte(given)) == nil
	}
	if plain == "" {
		return false // No secret configured at all
	}
	// Constant-time compare against the plaintext secret
	return subtle.ConstantTimeCompare([]byte(given), []byte(plain)) == 1
}
