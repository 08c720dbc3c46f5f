package security

import (
	"github.com/matthewhartstonge/argon2"
)

// HashPassword hashes a plaintext password with argon2id. A fresh random salt
// is drawn on every call, so hashing the same password twice never yields the
// same encoded value.
func HashPassword(password string) (string, error) {
	config := argon2.DefaultConfig()

	encoded, err := config.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword reports whether the plaintext password matches the encoded
// hash. The comparison is constant-time.
func VerifyPassword(password, encodedHash string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
