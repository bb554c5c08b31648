package auth

import (
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// hashSalt is a fixed application-level salt for the password KDF. Login
// looks users up by (email, hash), so the hash must be a pure function of
// the password; a per-user random salt would break that lookup.
var hashSalt = []byte("bucketlist/auth/v1")

// HashPassword derives the opaque comparable hash stored on a user record.
func HashPassword(password string) string {
	key := argon2.IDKey([]byte(password), hashSalt, 1, 64*1024, 4, 32)
	return hex.EncodeToString(key)
}
