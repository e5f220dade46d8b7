package token

import (
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a password with bcrypt. The result embeds its own
// salt and is never reversible.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", goerr.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

// VerifyPassword compares a password against a stored hash
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
